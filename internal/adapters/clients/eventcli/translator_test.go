package eventcli

import (
	"errors"
	"testing"
	"time"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

func TestToDomainReminder(t *testing.T) {
	t.Parallel()

	dto := &reminderDTO{
		ID:          "x-1",
		Title:       "Dentist",
		Notes:       "bring card",
		List:        "Health",
		DueDate:     "2026-03-01T09:00:00Z",
		URL:         "https://example.com",
		IsCompleted: true,
	}

	got, err := toDomainReminder(dto)
	if err != nil {
		t.Fatalf("toDomainReminder error: %v", err)
	}

	if got.ID != "x-1" || got.Title != "Dentist" || got.List != "Health" {
		t.Errorf("translated reminder = %+v", got)
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
	want := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, want)
	}
}

func TestToDomainReminder_NoDueDate(t *testing.T) {
	t.Parallel()

	got, err := toDomainReminder(&reminderDTO{ID: "x-2", Title: "Buy milk", List: "Inbox"})
	if err != nil {
		t.Fatalf("toDomainReminder error: %v", err)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}
}

func TestToDomainReminder_BadDueDate(t *testing.T) {
	t.Parallel()

	_, err := toDomainReminder(&reminderDTO{Title: "Buy milk", DueDate: "next tuesday"})
	if !errors.Is(err, domain.ErrSystem) {
		t.Errorf("toDomainReminder = %v, want ErrSystem", err)
	}
}

func TestToDomainEvent(t *testing.T) {
	t.Parallel()

	dto := &eventDTO{
		ID:        "ev-1",
		Title:     "Standup",
		StartDate: "2026-03-01T09:00:00Z",
		EndDate:   "2026-03-01T09:30:00Z",
		Calendar:  "Work",
		Location:  "Room 4",
		IsAllDay:  false,
	}

	got, err := toDomainEvent(dto)
	if err != nil {
		t.Fatalf("toDomainEvent error: %v", err)
	}
	if got.Title != "Standup" || got.Calendar != "Work" || got.Location != "Room 4" {
		t.Errorf("translated event = %+v", got)
	}
	if !got.EndDate.After(got.StartDate) {
		t.Errorf("EndDate %v not after StartDate %v", got.EndDate, got.StartDate)
	}
}

func TestToDomainEvent_BadDates(t *testing.T) {
	t.Parallel()

	_, err := toDomainEvent(&eventDTO{Title: "Standup", StartDate: "garbage", EndDate: "2026-03-01T09:30:00Z"})
	if !errors.Is(err, domain.ErrSystem) {
		t.Errorf("toDomainEvent = %v, want ErrSystem", err)
	}
}

func TestArgBuilder(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got := newArgs("create-reminder").
		flag("title", "Buy milk").
		flag("notes", "").
		timeFlag("due-date", due).
		boolFlag("all-day", false).
		boolFlag("show-completed", true).
		durationFlag("due-within", 48*time.Hour).
		build()

	want := []string{
		"--action", "create-reminder",
		"--title", "Buy milk",
		"--due-date", "2026-03-01T09:00:00Z",
		"--show-completed", "true",
		"--due-within", "48",
	}

	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
