package ports

import (
	"context"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// EventClient defines the client port for the native EventKit helper.
// Implemented by the eventcli adapter; called by the application layer.
// Methods map 1:1 to helper actions using domain terminology. The adapter
// translates between the helper's wire format and domain entities, and all
// methods surface the shared error taxonomy: domain.ErrPermission when the
// operating system denies access, domain.ErrUser for caller mistakes, and
// domain.ErrSystem for helper failures.
type EventClient interface {
	// ListReminderLists returns the names of all reminder lists.
	ListReminderLists(ctx context.Context) ([]domain.ReminderList, error)

	// CreateReminderList creates a new reminder list.
	CreateReminderList(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error)

	// ListReminders returns reminders matching the given filter.
	ListReminders(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error)

	// CreateReminder creates a new reminder and returns it with its
	// native identifier assigned.
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)

	// UpdateReminder applies a partial update to the reminder matching
	// title (and update.List, when set) and returns the updated entity.
	// Nil update fields are left untouched; explicitly cleared fields are
	// sent to the helper as empty values.
	// Returns domain.ErrUser if no reminder matches.
	UpdateReminder(ctx context.Context, title string, update *domain.ReminderUpdate) (*domain.Reminder, error)

	// DeleteReminder deletes the reminder matching title (and list, when set).
	// Returns domain.ErrUser if no reminder matches.
	DeleteReminder(ctx context.Context, title, list string) error

	// CompleteReminder marks the matching reminder as completed.
	// Returns domain.ErrUser if no reminder matches.
	CompleteReminder(ctx context.Context, title, list string) error

	// ListCalendars returns the names of all calendars.
	ListCalendars(ctx context.Context) ([]string, error)

	// ListEvents returns events matching the given filter.
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error)

	// CreateEvent creates a new calendar event and returns it with its
	// native identifier assigned.
	CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)

	// UpdateEvent updates an event by native identifier and returns the
	// updated entity.
	// Returns domain.ErrUser if the event does not exist.
	UpdateEvent(ctx context.Context, id string, event *domain.CalendarEvent) (*domain.CalendarEvent, error)

	// DeleteEvent deletes an event by native identifier.
	// Returns domain.ErrUser if the event does not exist.
	DeleteEvent(ctx context.Context, id string) error
}
