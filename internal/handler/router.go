package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the full route tree. Kept out of main so tests can mount
// the exact router the server runs.
func NewRouter(attendees *AttendeeHandler, sessions *SessionHandler, registrations *RegistrationHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log
	r.Use(CORS)                    // permissive CORS for demo

	r.Get("/health", HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/attendees", func(r chi.Router) {
			r.Post("/", attendees.Create)
			r.Get("/", attendees.List)
			r.Get("/{id}", attendees.Get)
			r.Put("/{id}", attendees.Update)
			r.Delete("/{id}", attendees.Delete)
			r.Get("/{id}/registrations", attendees.ListRegistrations)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.Create)
			r.Get("/", sessions.List)
			r.Get("/{id}", sessions.Get)
			r.Put("/{id}", sessions.Update)
			r.Delete("/{id}", sessions.Delete)
			r.Get("/{id}/details", sessions.Details)
			r.Get("/{id}/registrations", sessions.ListRegistrations)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Post("/", registrations.Register)
			r.Delete("/{attendeeID}/{sessionID}", registrations.Unregister)
		})
	})

	return r
}
