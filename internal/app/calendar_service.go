package app

import (
	"context"
	"log/slog"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// Compile-time check that CalendarService implements ports.CalendarService.
var _ ports.CalendarService = (*CalendarService)(nil)

// CalendarService implements ports.CalendarService by orchestrating calls
// to the native helper through the EventClient port.
type CalendarService struct {
	events ports.EventClient
	logger *slog.Logger
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(client ports.EventClient, logger *slog.Logger) *CalendarService {
	return &CalendarService{
		events: client,
		logger: logger,
	}
}

// ListCalendars returns the names of all calendars.
func (s *CalendarService) ListCalendars(ctx context.Context) ([]string, error) {
	s.logger.InfoContext(ctx, "listing calendars")

	calendars, err := s.events.ListCalendars(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list calendars",
			slog.String("operation", "ListCalendars"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return calendars, nil
}

// ListEvents returns events matching the given filter.
func (s *CalendarService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error) {
	s.logger.InfoContext(ctx, "listing events", slog.String("calendar", filter.Calendar))

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.events.ListEvents(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list events",
			slog.String("operation", "ListEvents"),
			slog.String("calendar", filter.Calendar),
			slog.Any("error", err),
		)
		return nil, err
	}

	return events, nil
}

// CreateEvent validates and creates a new calendar event, returning the
// created entity with its native identifier assigned.
func (s *CalendarService) CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	s.logger.InfoContext(ctx, "creating event", slog.String("title", event.Title))

	if err := event.Validate(); err != nil {
		return nil, err
	}

	created, err := s.events.CreateEvent(ctx, event)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create event",
			slog.String("operation", "CreateEvent"),
			slog.String("title", event.Title),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateEvent updates an existing event by native identifier. Fields in
// event are partial update data; only the identifier is required, plus
// range consistency when both dates are present.
func (s *CalendarService) UpdateEvent(ctx context.Context, id string, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	s.logger.InfoContext(ctx, "updating event", slog.String("id", id))

	fields := make(map[string]string)
	if id == "" {
		fields["id"] = domain.MsgRequired
	}
	if !event.StartDate.IsZero() && !event.EndDate.IsZero() && event.EndDate.Before(event.StartDate) {
		fields["end_date"] = "must not be before start date"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	updated, err := s.events.UpdateEvent(ctx, id, event)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update event",
			slog.String("operation", "UpdateEvent"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteEvent deletes an event by native identifier.
func (s *CalendarService) DeleteEvent(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting event", slog.String("id", id))

	if id == "" {
		return &domain.ValidationError{Fields: map[string]string{"id": domain.MsgRequired}}
	}

	if err := s.events.DeleteEvent(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete event",
			slog.String("operation", "DeleteEvent"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
