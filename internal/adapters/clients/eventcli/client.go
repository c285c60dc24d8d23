package eventcli

import (
	"context"
	"log/slog"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/platform/bridge"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// Compile-time interface check.
var _ ports.EventClient = (*Client)(nil)

// Client implements [ports.EventClient] on top of the bridge. Each method
// builds one helper action vector, executes it with permission-aware retry,
// and translates the response payload into domain entities. Error
// classification (permission / user / system) happens inside the bridge;
// this adapter only adds the wire translation.
type Client struct {
	bridge *bridge.Client
	logger *slog.Logger
}

// New creates an EventClient adapter around the given bridge client.
func New(b *bridge.Client, logger *slog.Logger) *Client {
	return &Client{
		bridge: b,
		logger: logger,
	}
}

// --- Reminder operations ---

// ListReminderLists runs the list-reminder-lists action. The helper
// responds with a flat array of list names.
func (c *Client) ListReminderLists(ctx context.Context) ([]domain.ReminderList, error) {
	names, err := bridge.Execute[[]string](ctx, c.bridge, newArgs("list-reminder-lists").build())
	if err != nil {
		return nil, err
	}

	lists := make([]domain.ReminderList, 0, len(names))
	for _, name := range names {
		lists = append(lists, domain.ReminderList{Name: name})
	}
	return lists, nil
}

// CreateReminderList runs the create-reminder-list action.
func (c *Client) CreateReminderList(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error) {
	args := newArgs("create-reminder-list").
		flag("name", list.Name).
		build()

	name, err := bridge.Execute[string](ctx, c.bridge, args)
	if err != nil {
		return nil, err
	}
	return &domain.ReminderList{Name: name}, nil
}

// ListReminders runs the list-reminders action with the filter's criteria
// as optional flags.
func (c *Client) ListReminders(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error) {
	args := newArgs("list-reminders").
		flag("list", filter.List).
		flag("search", filter.Search).
		boolFlag("show-completed", filter.ShowCompleted).
		durationFlag("due-within", filter.DueWithin).
		build()

	dtos, err := bridge.Execute[[]reminderDTO](ctx, c.bridge, args)
	if err != nil {
		return nil, err
	}
	return toDomainReminderList(dtos)
}

// CreateReminder runs the create-reminder action and returns the created
// reminder with its native identifier.
func (c *Client) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	b := newArgs("create-reminder").
		flag("title", reminder.Title).
		flag("notes", reminder.Notes).
		flag("list", reminder.List).
		flag("url", reminder.URL)
	if reminder.DueDate != nil {
		b.timeFlag("due-date", *reminder.DueDate)
	}

	dto, err := bridge.Execute[reminderDTO](ctx, c.bridge, b.build())
	if err != nil {
		return nil, err
	}
	return toDomainReminder(&dto)
}

// UpdateReminder runs the update-reminder action. The reminder to change is
// matched by title (and update.List, when set). Changed fields travel as
// flags, with the new title under new-title. A field the caller explicitly
// cleared is sent with an empty value so the helper drops it; an absent
// field is omitted and left untouched.
func (c *Client) UpdateReminder(ctx context.Context, title string, update *domain.ReminderUpdate) (*domain.Reminder, error) {
	b := newArgs("update-reminder").
		flag("title", title).
		flag("list", update.List)
	if update.NewTitle != nil && *update.NewTitle != title {
		b.flag("new-title", *update.NewTitle)
	}
	if update.Notes != nil {
		b.setFlag("notes", *update.Notes)
	}
	if update.URL != nil {
		b.setFlag("url", *update.URL)
	}
	if update.DueDate != nil {
		if update.DueDate.IsZero() {
			b.setFlag("due-date", "")
		} else {
			b.timeFlag("due-date", *update.DueDate)
		}
	}

	dto, err := bridge.Execute[reminderDTO](ctx, c.bridge, b.build())
	if err != nil {
		return nil, err
	}
	return toDomainReminder(&dto)
}

// DeleteReminder runs the delete-reminder action.
func (c *Client) DeleteReminder(ctx context.Context, title, list string) error {
	args := newArgs("delete-reminder").
		flag("title", title).
		flag("list", list).
		build()

	_, err := bridge.Execute[any](ctx, c.bridge, args)
	return err
}

// CompleteReminder runs the complete-reminder action.
func (c *Client) CompleteReminder(ctx context.Context, title, list string) error {
	args := newArgs("complete-reminder").
		flag("title", title).
		flag("list", list).
		build()

	_, err := bridge.Execute[any](ctx, c.bridge, args)
	return err
}

// --- Calendar operations ---

// ListCalendars runs the list-calendars action. The helper responds with a
// flat array of calendar names.
func (c *Client) ListCalendars(ctx context.Context) ([]string, error) {
	return bridge.Execute[[]string](ctx, c.bridge, newArgs("list-calendars").build())
}

// ListEvents runs the list-events action with the filter's criteria as
// optional flags.
func (c *Client) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error) {
	args := newArgs("list-events").
		flag("calendar", filter.Calendar).
		timeFlag("from", filter.From).
		timeFlag("to", filter.To).
		build()

	dtos, err := bridge.Execute[[]eventDTO](ctx, c.bridge, args)
	if err != nil {
		return nil, err
	}
	return toDomainEventList(dtos)
}

// CreateEvent runs the create-event action and returns the created event
// with its native identifier.
func (c *Client) CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	args := newArgs("create-event").
		flag("title", event.Title).
		timeFlag("start-date", event.StartDate).
		timeFlag("end-date", event.EndDate).
		flag("calendar", event.Calendar).
		flag("location", event.Location).
		flag("notes", event.Notes).
		flag("url", event.URL).
		boolFlag("all-day", event.IsAllDay).
		build()

	dto, err := bridge.Execute[eventDTO](ctx, c.bridge, args)
	if err != nil {
		return nil, err
	}
	return toDomainEvent(&dto)
}

// UpdateEvent runs the update-event action against the event's native
// identifier.
func (c *Client) UpdateEvent(ctx context.Context, id string, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	args := newArgs("update-event").
		flag("id", id).
		flag("title", event.Title).
		timeFlag("start-date", event.StartDate).
		timeFlag("end-date", event.EndDate).
		flag("calendar", event.Calendar).
		flag("location", event.Location).
		flag("notes", event.Notes).
		flag("url", event.URL).
		boolFlag("all-day", event.IsAllDay).
		build()

	dto, err := bridge.Execute[eventDTO](ctx, c.bridge, args)
	if err != nil {
		return nil, err
	}
	return toDomainEvent(&dto)
}

// DeleteEvent runs the delete-event action against the event's native
// identifier.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	args := newArgs("delete-event").
		flag("id", id).
		build()

	_, err := bridge.Execute[any](ctx, c.bridge, args)
	return err
}
