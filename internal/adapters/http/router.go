// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	remindersHandler *handlers.RemindersHandler,
	calendarHandler *handlers.CalendarHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Reminder lists.
		r.Get("/reminder-lists", remindersHandler.ListReminderLists)
		r.Post("/reminder-lists", remindersHandler.CreateReminderList)

		// Reminders, addressed by title. chi prefers static segments over
		// parameters, so /reminders/complete wins over /reminders/{title}.
		r.Get("/reminders", remindersHandler.ListReminders)
		r.Post("/reminders", remindersHandler.CreateReminder)
		r.Post("/reminders/complete", remindersHandler.CompleteReminders)
		r.Patch("/reminders/{title}", remindersHandler.UpdateReminder)
		r.Delete("/reminders/{title}", remindersHandler.DeleteReminder)
		r.Post("/reminders/{title}/complete", remindersHandler.CompleteReminder)

		// Calendars and events.
		r.Get("/calendars", calendarHandler.ListCalendars)
		r.Get("/events", calendarHandler.ListEvents)
		r.Post("/events", calendarHandler.CreateEvent)
		r.Patch("/events/{id}", calendarHandler.UpdateEvent)
		r.Delete("/events/{id}", calendarHandler.DeleteEvent)
	})

	return r
}
