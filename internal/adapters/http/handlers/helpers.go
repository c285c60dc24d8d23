package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/adapters/http/dto"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		}, false)
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err, false)
		return false
	}
	return true
}

// parseReminderFilter extracts reminder list filter criteria from query
// parameters: list, search, show_completed, due_within_hours.
func parseReminderFilter(r *http.Request) (domain.ReminderFilter, error) {
	q := r.URL.Query()

	filter := domain.ReminderFilter{
		List:   q.Get("list"),
		Search: q.Get("search"),
	}

	if raw := q.Get("show_completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, &domain.ValidationError{
				Fields: map[string]string{"show_completed": "must be a boolean"},
			}
		}
		filter.ShowCompleted = v
	}

	if raw := q.Get("due_within_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return filter, &domain.ValidationError{
				Fields: map[string]string{"due_within_hours": "must be an integer"},
			}
		}
		filter.DueWithin = time.Duration(hours) * time.Hour
	}

	return filter, nil
}

// parseEventFilter extracts calendar event filter criteria from query
// parameters: calendar, from, to. Dates must be RFC 3339 timestamps.
func parseEventFilter(r *http.Request) (domain.EventFilter, error) {
	q := r.URL.Query()

	filter := domain.EventFilter{
		Calendar: q.Get("calendar"),
	}

	fields := make(map[string]string)
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fields["from"] = "must be an RFC 3339 timestamp"
		}
		filter.From = t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fields["to"] = "must be an RFC 3339 timestamp"
		}
		filter.To = t
	}

	if len(fields) > 0 {
		return filter, &domain.ValidationError{Fields: fields}
	}
	return filter, nil
}
