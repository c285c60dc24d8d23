package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgBadTimestamp = "must be an RFC 3339 timestamp"
)

// parseTimestamp validates and parses an RFC 3339 timestamp field, recording
// a validation message in fields on failure.
func parseTimestamp(fields map[string]string, name, value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		fields[name] = msgBadTimestamp
	}
	return t
}

// CreateReminderListRequest represents the JSON body for creating a new
// reminder list.
type CreateReminderListRequest struct {
	Name string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateReminderListRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgRequired}}
	}
	return nil
}

// ToDomain converts the request to a domain entity.
func (r *CreateReminderListRequest) ToDomain() *domain.ReminderList {
	return &domain.ReminderList{Name: r.Name}
}

// CreateReminderRequest represents the JSON body for creating a new reminder.
// DueDate, when present, must be an RFC 3339 timestamp.
type CreateReminderRequest struct {
	Title   string `json:"title"`
	Notes   string `json:"notes,omitempty"`
	List    string `json:"list,omitempty"`
	DueDate string `json:"due_date,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Validate checks that required fields are present and the due date, if any,
// parses. Returns a *domain.ValidationError if any checks fail.
func (r *CreateReminderRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.DueDate != "" {
		parseTimestamp(fields, "due_date", r.DueDate)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a domain entity.
func (r *CreateReminderRequest) ToDomain() *domain.Reminder {
	rem := &domain.Reminder{
		Title: r.Title,
		Notes: r.Notes,
		List:  r.List,
		URL:   r.URL,
	}
	if r.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, r.DueDate); err == nil {
			rem.DueDate = &due
		}
	}
	return rem
}

// UpdateReminderRequest represents the JSON body for updating an existing
// reminder, looked up by its current title in the URL. All fields are
// optional; a field left out of the body is not changed, a field sent as
// the empty string is cleared (except title, which cannot be cleared).
type UpdateReminderRequest struct {
	Title   *string `json:"title,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	List    *string `json:"list,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	URL     *string `json:"url,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateReminderRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.DueDate != nil && *r.DueDate != "" {
		parseTimestamp(fields, "due_date", *r.DueDate)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a partial update. Field presence
// is preserved: an absent field stays nil, `"notes": ""` becomes an explicit
// clear, and `"due_date": ""` becomes a non-nil zero time that removes the
// due date.
func (r *UpdateReminderRequest) ToDomain() *domain.ReminderUpdate {
	upd := &domain.ReminderUpdate{
		NewTitle: r.Title,
		Notes:    r.Notes,
		URL:      r.URL,
	}
	if r.List != nil {
		upd.List = *r.List
	}
	if r.DueDate != nil {
		var due time.Time
		if *r.DueDate != "" {
			due, _ = time.Parse(time.RFC3339, *r.DueDate)
		}
		upd.DueDate = &due
	}
	return upd
}

// CompleteRemindersRequest represents the JSON body for completing multiple
// reminders in one call.
type CompleteRemindersRequest struct {
	List   string   `json:"list,omitempty"`
	Titles []string `json:"titles"`
}

// Validate checks that at least one non-empty title was provided.
// Returns a *domain.ValidationError if any checks fail.
func (r *CompleteRemindersRequest) Validate() error {
	if len(r.Titles) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"titles": msgMustNotEmpty}}
	}
	for i, title := range r.Titles {
		if strings.TrimSpace(title) == "" {
			return &domain.ValidationError{Fields: map[string]string{
				"titles": fmt.Sprintf("entry %d %s", i, msgMustNotEmpty),
			}}
		}
	}
	return nil
}

// CreateEventRequest represents the JSON body for creating a calendar event.
// StartDate and EndDate must be RFC 3339 timestamps.
type CreateEventRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Calendar  string `json:"calendar,omitempty"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
	URL       string `json:"url,omitempty"`
	IsAllDay  bool   `json:"is_all_day,omitempty"`
}

// Validate checks that required fields are present and timestamps parse.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateEventRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.StartDate == "" {
		fields["start_date"] = msgRequired
	} else {
		parseTimestamp(fields, "start_date", r.StartDate)
	}
	if r.EndDate == "" {
		fields["end_date"] = msgRequired
	} else {
		parseTimestamp(fields, "end_date", r.EndDate)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a domain entity.
func (r *CreateEventRequest) ToDomain() *domain.CalendarEvent {
	start, _ := time.Parse(time.RFC3339, r.StartDate)
	end, _ := time.Parse(time.RFC3339, r.EndDate)
	return &domain.CalendarEvent{
		Title:     r.Title,
		StartDate: start,
		EndDate:   end,
		Calendar:  r.Calendar,
		Location:  r.Location,
		Notes:     r.Notes,
		URL:       r.URL,
		IsAllDay:  r.IsAllDay,
	}
}

// UpdateEventRequest represents the JSON body for updating an existing
// calendar event, looked up by its identifier in the URL. All fields are
// optional; nil means "do not change this field".
type UpdateEventRequest struct {
	Title     *string `json:"title,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Calendar  *string `json:"calendar,omitempty"`
	Location  *string `json:"location,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	URL       *string `json:"url,omitempty"`
	IsAllDay  *bool   `json:"is_all_day,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateEventRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.StartDate != nil {
		parseTimestamp(fields, "start_date", *r.StartDate)
	}
	if r.EndDate != nil {
		parseTimestamp(fields, "end_date", *r.EndDate)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a partial domain entity carrying
// only the fields to change.
func (r *UpdateEventRequest) ToDomain() *domain.CalendarEvent {
	ev := &domain.CalendarEvent{}
	if r.Title != nil {
		ev.Title = *r.Title
	}
	if r.StartDate != nil {
		ev.StartDate, _ = time.Parse(time.RFC3339, *r.StartDate)
	}
	if r.EndDate != nil {
		ev.EndDate, _ = time.Parse(time.RFC3339, *r.EndDate)
	}
	if r.Calendar != nil {
		ev.Calendar = *r.Calendar
	}
	if r.Location != nil {
		ev.Location = *r.Location
	}
	if r.Notes != nil {
		ev.Notes = *r.Notes
	}
	if r.URL != nil {
		ev.URL = *r.URL
	}
	if r.IsAllDay != nil {
		ev.IsAllDay = *r.IsAllDay
	}
	return ev
}
