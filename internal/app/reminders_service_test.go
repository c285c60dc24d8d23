package app_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/app"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// fakeEventClient is a hand-rolled ports.EventClient with per-method hooks.
// Unset hooks fail the calling test.
type fakeEventClient struct {
	t *testing.T

	listReminderLists  func(ctx context.Context) ([]domain.ReminderList, error)
	createReminderList func(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error)
	listReminders      func(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error)
	createReminder     func(ctx context.Context, r *domain.Reminder) (*domain.Reminder, error)
	updateReminder     func(ctx context.Context, title string, u *domain.ReminderUpdate) (*domain.Reminder, error)
	deleteReminder     func(ctx context.Context, title, list string) error
	completeReminder   func(ctx context.Context, title, list string) error
	listCalendars      func(ctx context.Context) ([]string, error)
	listEvents         func(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error)
	createEvent        func(ctx context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error)
	updateEvent        func(ctx context.Context, id string, e *domain.CalendarEvent) (*domain.CalendarEvent, error)
	deleteEvent        func(ctx context.Context, id string) error
}

func (f *fakeEventClient) ListReminderLists(ctx context.Context) ([]domain.ReminderList, error) {
	if f.listReminderLists == nil {
		f.t.Fatal("unexpected ListReminderLists call")
	}
	return f.listReminderLists(ctx)
}

func (f *fakeEventClient) CreateReminderList(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error) {
	if f.createReminderList == nil {
		f.t.Fatal("unexpected CreateReminderList call")
	}
	return f.createReminderList(ctx, list)
}

func (f *fakeEventClient) ListReminders(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error) {
	if f.listReminders == nil {
		f.t.Fatal("unexpected ListReminders call")
	}
	return f.listReminders(ctx, filter)
}

func (f *fakeEventClient) CreateReminder(ctx context.Context, r *domain.Reminder) (*domain.Reminder, error) {
	if f.createReminder == nil {
		f.t.Fatal("unexpected CreateReminder call")
	}
	return f.createReminder(ctx, r)
}

func (f *fakeEventClient) UpdateReminder(ctx context.Context, title string, u *domain.ReminderUpdate) (*domain.Reminder, error) {
	if f.updateReminder == nil {
		f.t.Fatal("unexpected UpdateReminder call")
	}
	return f.updateReminder(ctx, title, u)
}

func (f *fakeEventClient) DeleteReminder(ctx context.Context, title, list string) error {
	if f.deleteReminder == nil {
		f.t.Fatal("unexpected DeleteReminder call")
	}
	return f.deleteReminder(ctx, title, list)
}

func (f *fakeEventClient) CompleteReminder(ctx context.Context, title, list string) error {
	if f.completeReminder == nil {
		f.t.Fatal("unexpected CompleteReminder call")
	}
	return f.completeReminder(ctx, title, list)
}

func (f *fakeEventClient) ListCalendars(ctx context.Context) ([]string, error) {
	if f.listCalendars == nil {
		f.t.Fatal("unexpected ListCalendars call")
	}
	return f.listCalendars(ctx)
}

func (f *fakeEventClient) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error) {
	if f.listEvents == nil {
		f.t.Fatal("unexpected ListEvents call")
	}
	return f.listEvents(ctx, filter)
}

func (f *fakeEventClient) CreateEvent(ctx context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if f.createEvent == nil {
		f.t.Fatal("unexpected CreateEvent call")
	}
	return f.createEvent(ctx, e)
}

func (f *fakeEventClient) UpdateEvent(ctx context.Context, id string, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if f.updateEvent == nil {
		f.t.Fatal("unexpected UpdateEvent call")
	}
	return f.updateEvent(ctx, id, e)
}

func (f *fakeEventClient) DeleteEvent(ctx context.Context, id string) error {
	if f.deleteEvent == nil {
		f.t.Fatal("unexpected DeleteEvent call")
	}
	return f.deleteEvent(ctx, id)
}

func TestRemindersService_ListReminderLists(t *testing.T) {
	t.Parallel()

	client := &fakeEventClient{t: t, listReminderLists: func(context.Context) ([]domain.ReminderList, error) {
		return []domain.ReminderList{{Name: "Inbox"}}, nil
	}}
	svc := app.NewRemindersService(client, discardLogger())

	lists, err := svc.ListReminderLists(context.Background())
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Inbox", lists[0].Name)
}

func TestRemindersService_CreateReminder_Invalid(t *testing.T) {
	t.Parallel()

	// No hooks set: validation must fail before the client is reached.
	svc := app.NewRemindersService(&fakeEventClient{t: t}, discardLogger())

	_, err := svc.CreateReminder(context.Background(), &domain.Reminder{Notes: "orphan"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemindersService_CreateReminder_PassesThrough(t *testing.T) {
	t.Parallel()

	created := &domain.Reminder{ID: "r-1", Title: "Buy milk", List: "Inbox"}
	client := &fakeEventClient{t: t, createReminder: func(_ context.Context, r *domain.Reminder) (*domain.Reminder, error) {
		assert.Equal(t, "Buy milk", r.Title)
		return created, nil
	}}
	svc := app.NewRemindersService(client, discardLogger())

	got, err := svc.CreateReminder(context.Background(), &domain.Reminder{Title: "Buy milk", List: "Inbox"})
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)
}

func TestRemindersService_UpdateReminder_RequiresTitle(t *testing.T) {
	t.Parallel()

	svc := app.NewRemindersService(&fakeEventClient{t: t}, discardLogger())

	_, err := svc.UpdateReminder(context.Background(), "", &domain.ReminderUpdate{Notes: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemindersService_UpdateReminder_RejectsEmptyRename(t *testing.T) {
	t.Parallel()

	svc := app.NewRemindersService(&fakeEventClient{t: t}, discardLogger())

	_, err := svc.UpdateReminder(context.Background(), "Buy milk", &domain.ReminderUpdate{NewTitle: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemindersService_UpdateReminder_PreservesExplicitClear(t *testing.T) {
	t.Parallel()

	var got *domain.ReminderUpdate
	client := &fakeEventClient{t: t, updateReminder: func(_ context.Context, title string, u *domain.ReminderUpdate) (*domain.Reminder, error) {
		got = u
		return &domain.Reminder{ID: "r-1", Title: title}, nil
	}}
	svc := app.NewRemindersService(client, discardLogger())

	_, err := svc.UpdateReminder(context.Background(), "Buy milk", &domain.ReminderUpdate{Notes: strPtr("")})
	require.NoError(t, err)

	// The clear must reach the client as set-to-empty, not as absent.
	require.NotNil(t, got.Notes)
	assert.Empty(t, *got.Notes)
	assert.Nil(t, got.URL)
	assert.Nil(t, got.DueDate)
}

func TestRemindersService_DeleteReminder_ClientError(t *testing.T) {
	t.Parallel()

	notFound := &domain.UserError{Message: "Reminder not found: x"}
	client := &fakeEventClient{t: t, deleteReminder: func(context.Context, string, string) error {
		return notFound
	}}
	svc := app.NewRemindersService(client, discardLogger())

	err := svc.DeleteReminder(context.Background(), "x", "")
	assert.ErrorIs(t, err, domain.ErrUser)
}

func TestRemindersService_CompleteReminders_PartialSuccess(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	calls := 0
	client := &fakeEventClient{t: t, completeReminder: func(_ context.Context, title, _ string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		if title == "broken" {
			return &domain.UserError{Message: "Reminder not found: broken"}
		}
		return nil
	}}
	svc := app.NewRemindersService(client, discardLogger())

	res, err := svc.CompleteReminders(context.Background(), "Inbox", []string{"a", "broken", "b"})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Len(t, res.Completed, 2)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "broken", res.Errors[0].Title)
	assert.ErrorIs(t, res.Errors[0].Err, domain.ErrUser)
}

func TestRemindersService_CompleteReminders_RejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	svc := app.NewRemindersService(&fakeEventClient{t: t}, discardLogger())

	_, err := svc.CompleteReminders(context.Background(), "", []string{"a", ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemindersService_CompleteReminders_Empty(t *testing.T) {
	t.Parallel()

	svc := app.NewRemindersService(&fakeEventClient{t: t}, discardLogger())

	res, err := svc.CompleteReminders(context.Background(), "Inbox", nil)
	require.NoError(t, err)
	assert.Empty(t, res.Completed)
	assert.Empty(t, res.Errors)
}
