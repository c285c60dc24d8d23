package domain

import (
	"fmt"
	"strings"
	"time"
)

// Reminder is a single item in a Reminders list, as reported by the native
// CLI. IDs are the EventKit external identifiers and are opaque to this
// service.
type Reminder struct {
	ID        string
	Title     string
	Notes     string
	List      string
	DueDate   *time.Time
	URL       string
	Completed bool
}

// Validate checks business rules for creating a reminder.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (r *Reminder) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = MsgRequired
	}
	if r.DueDate != nil && r.DueDate.IsZero() {
		fields["due_date"] = "must be a valid timestamp"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ReminderUpdate carries partial changes for a reminder looked up by its
// current title. Nil fields are left unchanged; a non-nil pointer to the
// empty value is an explicit clear, so "drop the notes" and "leave the
// notes alone" stay distinguishable all the way to the native CLI.
type ReminderUpdate struct {
	// NewTitle renames the reminder. Titles cannot be cleared; Validate
	// rejects a rename to the empty string.
	NewTitle *string
	Notes    *string
	URL      *string
	// DueDate set to a non-nil zero time removes the due date.
	DueDate *time.Time
	// List narrows the lookup to a single list. It never moves the
	// reminder.
	List string
}

// Validate checks that the update is expressible.
func (u *ReminderUpdate) Validate() error {
	if u.NewTitle != nil && strings.TrimSpace(*u.NewTitle) == "" {
		return &ValidationError{Fields: map[string]string{"title": "must not be empty"}}
	}
	return nil
}

// ReminderList is a named Reminders list (the container, not its items).
type ReminderList struct {
	Name string
}

// Validate checks that the list has a usable name.
func (l *ReminderList) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return &ValidationError{Fields: map[string]string{"name": MsgRequired}}
	}
	return nil
}

// ReminderFilter holds optional filter criteria for listing reminders.
// Zero-value fields mean "no filter" for that dimension.
type ReminderFilter struct {
	List          string
	Search        string
	ShowCompleted bool
	DueWithin     time.Duration
}

// Validate checks that provided filter values are usable.
func (f *ReminderFilter) Validate() error {
	if f.DueWithin < 0 {
		return &ValidationError{Fields: map[string]string{
			"due_within": fmt.Sprintf("must not be negative, got %s", f.DueWithin),
		}}
	}
	return nil
}
