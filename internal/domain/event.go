package domain

import (
	"strings"
	"time"
)

// CalendarEvent is a single event from the Calendar store, as reported by
// the native CLI.
type CalendarEvent struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Calendar  string
	Location  string
	Notes     string
	URL       string
	IsAllDay  bool
}

// Validate checks business rules for creating an event.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (e *CalendarEvent) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.Title) == "" {
		fields["title"] = MsgRequired
	}
	if e.StartDate.IsZero() {
		fields["start_date"] = MsgRequired
	}
	if e.EndDate.IsZero() {
		fields["end_date"] = MsgRequired
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		fields["end_date"] = "must not be before start_date"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// EventFilter holds optional filter criteria for listing calendar events.
// Zero-value fields mean "no filter" for that dimension.
type EventFilter struct {
	Calendar string
	From     time.Time
	To       time.Time
}

// Validate checks that the date range is coherent when both ends are set.
func (f *EventFilter) Validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return &ValidationError{Fields: map[string]string{
			"to": "must not be before from",
		}}
	}
	return nil
}
