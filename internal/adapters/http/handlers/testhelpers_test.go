package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// fakeRemindersService implements ports.RemindersService with per-method
// hooks. Unset hooks fail the calling test.
type fakeRemindersService struct {
	t *testing.T

	listReminderLists  func(ctx context.Context) ([]domain.ReminderList, error)
	createReminderList func(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error)
	listReminders      func(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error)
	createReminder     func(ctx context.Context, r *domain.Reminder) (*domain.Reminder, error)
	updateReminder     func(ctx context.Context, title string, u *domain.ReminderUpdate) (*domain.Reminder, error)
	deleteReminder     func(ctx context.Context, title, list string) error
	completeReminder   func(ctx context.Context, title, list string) error
	completeReminders  func(ctx context.Context, list string, titles []string) (*ports.BulkCompleteResult, error)
}

func (f *fakeRemindersService) ListReminderLists(ctx context.Context) ([]domain.ReminderList, error) {
	if f.listReminderLists == nil {
		f.t.Fatal("unexpected ListReminderLists call")
	}
	return f.listReminderLists(ctx)
}

func (f *fakeRemindersService) CreateReminderList(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error) {
	if f.createReminderList == nil {
		f.t.Fatal("unexpected CreateReminderList call")
	}
	return f.createReminderList(ctx, list)
}

func (f *fakeRemindersService) ListReminders(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error) {
	if f.listReminders == nil {
		f.t.Fatal("unexpected ListReminders call")
	}
	return f.listReminders(ctx, filter)
}

func (f *fakeRemindersService) CreateReminder(ctx context.Context, r *domain.Reminder) (*domain.Reminder, error) {
	if f.createReminder == nil {
		f.t.Fatal("unexpected CreateReminder call")
	}
	return f.createReminder(ctx, r)
}

func (f *fakeRemindersService) UpdateReminder(ctx context.Context, title string, u *domain.ReminderUpdate) (*domain.Reminder, error) {
	if f.updateReminder == nil {
		f.t.Fatal("unexpected UpdateReminder call")
	}
	return f.updateReminder(ctx, title, u)
}

func (f *fakeRemindersService) DeleteReminder(ctx context.Context, title, list string) error {
	if f.deleteReminder == nil {
		f.t.Fatal("unexpected DeleteReminder call")
	}
	return f.deleteReminder(ctx, title, list)
}

func (f *fakeRemindersService) CompleteReminder(ctx context.Context, title, list string) error {
	if f.completeReminder == nil {
		f.t.Fatal("unexpected CompleteReminder call")
	}
	return f.completeReminder(ctx, title, list)
}

func (f *fakeRemindersService) CompleteReminders(ctx context.Context, list string, titles []string) (*ports.BulkCompleteResult, error) {
	if f.completeReminders == nil {
		f.t.Fatal("unexpected CompleteReminders call")
	}
	return f.completeReminders(ctx, list, titles)
}

// fakeCalendarService implements ports.CalendarService with per-method hooks.
type fakeCalendarService struct {
	t *testing.T

	listCalendars func(ctx context.Context) ([]string, error)
	listEvents    func(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error)
	createEvent   func(ctx context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error)
	updateEvent   func(ctx context.Context, id string, e *domain.CalendarEvent) (*domain.CalendarEvent, error)
	deleteEvent   func(ctx context.Context, id string) error
}

func (f *fakeCalendarService) ListCalendars(ctx context.Context) ([]string, error) {
	if f.listCalendars == nil {
		f.t.Fatal("unexpected ListCalendars call")
	}
	return f.listCalendars(ctx)
}

func (f *fakeCalendarService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.CalendarEvent, error) {
	if f.listEvents == nil {
		f.t.Fatal("unexpected ListEvents call")
	}
	return f.listEvents(ctx, filter)
}

func (f *fakeCalendarService) CreateEvent(ctx context.Context, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if f.createEvent == nil {
		f.t.Fatal("unexpected CreateEvent call")
	}
	return f.createEvent(ctx, e)
}

func (f *fakeCalendarService) UpdateEvent(ctx context.Context, id string, e *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if f.updateEvent == nil {
		f.t.Fatal("unexpected UpdateEvent call")
	}
	return f.updateEvent(ctx, id, e)
}

func (f *fakeCalendarService) DeleteEvent(ctx context.Context, id string) error {
	if f.deleteEvent == nil {
		f.t.Fatal("unexpected DeleteEvent call")
	}
	return f.deleteEvent(ctx, id)
}

// doRequest executes a request against a handler func with chi URL params
// parsed from the route pattern.
func doRequest(method, target, body string, route string, handler http.HandlerFunc) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	r := chi.NewRouter()
	r.MethodFunc(method, route, handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, reader)
	r.ServeHTTP(w, req)
	return w
}
