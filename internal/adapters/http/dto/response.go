// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// ReminderResponse represents a single reminder in HTTP responses.
type ReminderResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	List      string `json:"list,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
	URL       string `json:"url,omitempty"`
	Completed bool   `json:"completed"`
}

// ReminderListResponse represents a list of reminders in HTTP responses.
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int                `json:"count"`
}

// ToReminderResponse converts a domain Reminder entity to an HTTP response DTO.
func ToReminderResponse(r *domain.Reminder) ReminderResponse {
	resp := ReminderResponse{
		ID:        r.ID,
		Title:     r.Title,
		Notes:     r.Notes,
		List:      r.List,
		URL:       r.URL,
		Completed: r.Completed,
	}
	if r.DueDate != nil {
		resp.DueDate = r.DueDate.Format(time.RFC3339)
	}
	return resp
}

// ToReminderListResponse converts a slice of domain Reminder entities to an
// HTTP list response DTO.
func ToReminderListResponse(reminders []domain.Reminder) ReminderListResponse {
	items := make([]ReminderResponse, len(reminders))
	for i := range reminders {
		items[i] = ToReminderResponse(&reminders[i])
	}
	return ReminderListResponse{
		Reminders: items,
		Count:     len(items),
	}
}

// ListNamesResponse represents a collection of container names (reminder
// lists or calendars) in HTTP responses.
type ListNamesResponse struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// ToReminderListsResponse converts domain ReminderList entities to a names
// response DTO.
func ToReminderListsResponse(lists []domain.ReminderList) ListNamesResponse {
	names := make([]string, len(lists))
	for i := range lists {
		names[i] = lists[i].Name
	}
	return ListNamesResponse{Names: names, Count: len(names)}
}

// ToCalendarsResponse converts calendar names to a names response DTO.
func ToCalendarsResponse(calendars []string) ListNamesResponse {
	if calendars == nil {
		calendars = []string{}
	}
	return ListNamesResponse{Names: calendars, Count: len(calendars)}
}

// EventResponse represents a single calendar event in HTTP responses.
type EventResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Calendar  string `json:"calendar,omitempty"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
	URL       string `json:"url,omitempty"`
	IsAllDay  bool   `json:"is_all_day"`
}

// EventListResponse represents a list of calendar events in HTTP responses.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// ToEventResponse converts a domain CalendarEvent entity to an HTTP response DTO.
func ToEventResponse(e *domain.CalendarEvent) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		StartDate: e.StartDate.Format(time.RFC3339),
		EndDate:   e.EndDate.Format(time.RFC3339),
		Calendar:  e.Calendar,
		Location:  e.Location,
		Notes:     e.Notes,
		URL:       e.URL,
		IsAllDay:  e.IsAllDay,
	}
}

// ToEventListResponse converts a slice of domain CalendarEvent entities to an
// HTTP list response DTO.
func ToEventListResponse(events []domain.CalendarEvent) EventListResponse {
	items := make([]EventResponse, len(events))
	for i := range events {
		items[i] = ToEventResponse(&events[i])
	}
	return EventListResponse{
		Events: items,
		Count:  len(items),
	}
}

// BulkCompleteResponse represents the result of a bulk complete operation.
// It includes both completed titles and per-item errors.
type BulkCompleteResponse struct {
	Completed []string                `json:"completed"`
	Errors    []BulkCompleteErrorItem `json:"errors"`
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// BulkCompleteErrorItem represents a single failed completion within a bulk
// operation.
type BulkCompleteErrorItem struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ToBulkCompleteResponse converts a ports.BulkCompleteResult to an HTTP
// response DTO. Error messages pass through debug-aware presentation so
// system internals are not leaked per-item.
func ToBulkCompleteResponse(result *ports.BulkCompleteResult, debug bool) BulkCompleteResponse {
	completed := result.Completed
	if completed == nil {
		completed = []string{}
	}

	errs := make([]BulkCompleteErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkCompleteErrorItem{
			Title:   e.Title,
			Message: domain.Presentable(e.Err, debug),
		}
	}

	return BulkCompleteResponse{
		Completed: completed,
		Errors:    errs,
		Total:     len(completed) + len(errs),
		Succeeded: len(completed),
		Failed:    len(errs),
	}
}
