// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/adapters/http/dto"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// RemindersHandler handles HTTP requests for reminder and reminder-list
// operations. Reminders are addressed by title, matching the native store's
// lookup semantics.
type RemindersHandler struct {
	svc   ports.RemindersService
	debug bool
}

// NewRemindersHandler creates a new RemindersHandler with the given service
// port. When debug is true, system error detail passes through to clients
// unredacted.
func NewRemindersHandler(svc ports.RemindersService, debug bool) *RemindersHandler {
	return &RemindersHandler{svc: svc, debug: debug}
}

// ListReminderLists handles GET /api/v1/reminder-lists.
func (h *RemindersHandler) ListReminderLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListReminderLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReminderListsResponse(lists))
}

// CreateReminderList handles POST /api/v1/reminder-lists.
func (h *RemindersHandler) CreateReminderList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReminderListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateReminderList(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"name": created.Name})
}

// ListReminders handles GET /api/v1/reminders.
func (h *RemindersHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReminderFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	reminders, err := h.svc.ListReminders(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReminderListResponse(reminders))
}

// CreateReminder handles POST /api/v1/reminders.
func (h *RemindersHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReminderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateReminder(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToReminderResponse(created))
}

// UpdateReminder handles PATCH /api/v1/reminders/{title}.
func (h *RemindersHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	var req dto.UpdateReminderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateReminder(r.Context(), title, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReminderResponse(updated))
}

// DeleteReminder handles DELETE /api/v1/reminders/{title}. The optional
// list query parameter narrows the lookup to a single list.
func (h *RemindersHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	list := r.URL.Query().Get("list")

	if err := h.svc.DeleteReminder(r.Context(), title, list); err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteReminder handles POST /api/v1/reminders/{title}/complete.
func (h *RemindersHandler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	list := r.URL.Query().Get("list")

	if err := h.svc.CompleteReminder(r.Context(), title, list); err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteReminders handles POST /api/v1/reminders/complete. Completions run
// concurrently with partial success semantics; the response reports both
// completed titles and per-item failures.
func (h *RemindersHandler) CompleteReminders(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteRemindersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.CompleteReminders(r.Context(), req.List, req.Titles)
	if err != nil {
		dto.WriteErrorResponse(w, r, err, h.debug)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkCompleteResponse(result, h.debug))
}
