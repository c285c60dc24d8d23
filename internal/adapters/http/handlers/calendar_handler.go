package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/adapters/http/dto"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// CalendarHandler handles HTTP requests for calendar and event operations.
// Events are addressed by their opaque native identifier.
type CalendarHandler struct {
	svc   ports.CalendarService
	debug bool
}

// NewCalendarHandler creates a new CalendarHandler with the given service
// port. When debug is true, system error detail passes through to clients
// unredacted.
func NewCalendarHandler(svc ports.CalendarService, debug bool) *CalendarHandler {
	return &CalendarHandler{svc: svc, debug: debug}
}

// ListCalendars handles GET /api/v1/calendars.
func (h *CalendarHandler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.svc.ListCalendars(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCalendarsResponse(calendars))
}

// ListEvents handles GET /api/v1/events.
func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	events, err := h.svc.ListEvents(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventListResponse(events))
}

// CreateEvent handles POST /api/v1/events.
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateEvent(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEventResponse(created))
}

// UpdateEvent handles PATCH /api/v1/events/{id}.
func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateEvent(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventResponse(updated))
}

// DeleteEvent handles DELETE /api/v1/events/{id}.
func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
