// Package eventcli is the outbound adapter for the native EventKit helper.
// It builds the helper's flat argument vectors, runs them through the
// bridge, and translates the helper's JSON payloads into domain entities.
package eventcli

// reminderDTO matches the helper's reminder payload.
type reminderDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	List        string `json:"list"`
	DueDate     string `json:"dueDate,omitempty"`
	URL         string `json:"url,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// eventDTO matches the helper's calendar event payload.
type eventDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Calendar  string `json:"calendar"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
	URL       string `json:"url,omitempty"`
	IsAllDay  bool   `json:"isAllDay"`
}
