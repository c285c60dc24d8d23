package ports

import (
	"context"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// RemindersService defines the service port for reminder operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type RemindersService interface {
	// ListReminderLists returns the names of all reminder lists.
	ListReminderLists(ctx context.Context) ([]domain.ReminderList, error)

	// CreateReminderList creates a new reminder list and returns it.
	// Returns domain.ErrValidation if the list fails validation.
	CreateReminderList(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error)

	// ListReminders returns reminders matching the given filter criteria.
	// Pass a zero-value ReminderFilter to list all open reminders.
	ListReminders(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error)

	// CreateReminder creates a new reminder and returns the created entity
	// with its native identifier assigned.
	// Returns domain.ErrValidation if the reminder fails validation.
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)

	// UpdateReminder applies a partial update to an existing reminder
	// identified by title and optional list, and returns the updated
	// entity. Nil update fields are left unchanged; a field set to its
	// empty value is cleared.
	// Returns domain.ErrUser if the reminder does not exist.
	UpdateReminder(ctx context.Context, title string, update *domain.ReminderUpdate) (*domain.Reminder, error)

	// DeleteReminder deletes a reminder identified by title and optional list.
	// Returns domain.ErrUser if the reminder does not exist.
	DeleteReminder(ctx context.Context, title, list string) error

	// CompleteReminder marks a reminder as completed.
	// Returns domain.ErrUser if the reminder does not exist.
	CompleteReminder(ctx context.Context, title, list string) error

	// CompleteReminders marks multiple reminders as completed concurrently.
	// Uses partial success semantics: each completion succeeds or fails
	// independently, with per-item failures collected in
	// BulkCompleteResult.Errors.
	CompleteReminders(ctx context.Context, list string, titles []string) (*BulkCompleteResult, error)
}

// CalendarService defines the service port for calendar event operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type CalendarService interface {
	// ListCalendars returns the names of all calendars.
	ListCalendars(ctx context.Context) ([]string, error)

	// ListEvents returns events matching the given filter criteria.
	// Returns domain.ErrValidation if the filter's date range is inverted.
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error)

	// CreateEvent creates a new calendar event and returns the created
	// entity with its native identifier assigned.
	// Returns domain.ErrValidation if the event fails validation.
	CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)

	// UpdateEvent updates an existing event by native identifier and
	// returns the updated entity.
	// Returns domain.ErrUser if the event does not exist.
	UpdateEvent(ctx context.Context, id string, event *domain.CalendarEvent) (*domain.CalendarEvent, error)

	// DeleteEvent deletes an event by native identifier.
	// Returns domain.ErrUser if the event does not exist.
	DeleteEvent(ctx context.Context, id string) error
}

// BulkCompleteError records a single failed completion within a bulk operation.
type BulkCompleteError struct {
	Title string
	Err   error
}

// BulkCompleteResult holds the outcomes of a bulk complete operation.
// Completed contains titles of successfully completed reminders;
// Errors contains per-item failures.
type BulkCompleteResult struct {
	Completed []string
	Errors    []BulkCompleteError
}
