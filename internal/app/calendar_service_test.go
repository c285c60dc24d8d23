package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/app"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

func TestCalendarService_ListCalendars(t *testing.T) {
	t.Parallel()

	client := &fakeEventClient{t: t, listCalendars: func(context.Context) ([]string, error) {
		return []string{"Home", "Work"}, nil
	}}
	svc := app.NewCalendarService(client, discardLogger())

	names, err := svc.ListCalendars(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Work"}, names)
}

func TestCalendarService_ListEvents_InvalidFilter(t *testing.T) {
	t.Parallel()

	svc := app.NewCalendarService(&fakeEventClient{t: t}, discardLogger())

	from := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -7)
	_, err := svc.ListEvents(context.Background(), domain.EventFilter{From: from, To: to})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_CreateEvent_Invalid(t *testing.T) {
	t.Parallel()

	svc := app.NewCalendarService(&fakeEventClient{t: t}, discardLogger())

	_, err := svc.CreateEvent(context.Background(), &domain.CalendarEvent{Title: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_CreateEvent_PassesThrough(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := &domain.CalendarEvent{ID: "ev-1", Title: "Standup", StartDate: start, EndDate: start.Add(30 * time.Minute)}
	client := &fakeEventClient{t: t, createEvent: func(_ context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
		assert.Equal(t, "Standup", e.Title)
		return created, nil
	}}
	svc := app.NewCalendarService(client, discardLogger())

	got, err := svc.CreateEvent(context.Background(), &domain.CalendarEvent{
		Title:     "Standup",
		StartDate: start,
		EndDate:   start.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", got.ID)
}

func TestCalendarService_UpdateEvent_RequiresID(t *testing.T) {
	t.Parallel()

	svc := app.NewCalendarService(&fakeEventClient{t: t}, discardLogger())

	_, err := svc.UpdateEvent(context.Background(), "", &domain.CalendarEvent{Title: "Standup"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_UpdateEvent_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	svc := app.NewCalendarService(&fakeEventClient{t: t}, discardLogger())

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.UpdateEvent(context.Background(), "ev-1", &domain.CalendarEvent{
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_UpdateEvent_PartialFields(t *testing.T) {
	t.Parallel()

	client := &fakeEventClient{t: t, updateEvent: func(_ context.Context, id string, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
		assert.Equal(t, "ev-1", id)
		out := *e
		out.ID = id
		return &out, nil
	}}
	svc := app.NewCalendarService(client, discardLogger())

	// Title-only update: no dates set, range check must not fire.
	got, err := svc.UpdateEvent(context.Background(), "ev-1", &domain.CalendarEvent{Title: "Standup (moved)"})
	require.NoError(t, err)
	assert.Equal(t, "Standup (moved)", got.Title)
}

func TestCalendarService_DeleteEvent(t *testing.T) {
	t.Parallel()

	deleted := ""
	client := &fakeEventClient{t: t, deleteEvent: func(_ context.Context, id string) error {
		deleted = id
		return nil
	}}
	svc := app.NewCalendarService(client, discardLogger())

	require.NoError(t, svc.DeleteEvent(context.Background(), "ev-1"))
	assert.Equal(t, "ev-1", deleted)

	err := svc.DeleteEvent(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalendarService_DeleteEvent_PermissionErrorPassesThrough(t *testing.T) {
	t.Parallel()

	permErr := &domain.PermissionError{
		Domain:  domain.DomainCalendars,
		Message: "Calendar access denied",
	}
	client := &fakeEventClient{t: t, deleteEvent: func(context.Context, string) error {
		return permErr
	}}
	svc := app.NewCalendarService(client, discardLogger())

	err := svc.DeleteEvent(context.Background(), "ev-1")
	require.ErrorIs(t, err, domain.ErrPermission)

	var pe *domain.PermissionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, domain.DomainCalendars, pe.Domain)
}
