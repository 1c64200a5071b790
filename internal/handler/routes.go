package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/hotel-admin/backend/internal/middleware"
)

// Routes returns the API router. Cross-cutting middleware (request IDs,
// logging, CORS, body limits) is applied by the caller around it.
//
// When a session gate is configured, everything except the health check, the
// OpenAPI document and the session endpoints requires an active session.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		notFound(w, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	if s.sessions != nil {
		r.Route("/session", func(r chi.Router) {
			r.Post("/", s.signIn)
			r.Get("/", s.getSession)
			r.Delete("/", s.signOut)
		})
	}

	r.Group(func(r chi.Router) {
		if s.sessions != nil {
			r.Use(middleware.RequireSession(s.sessions))
		}

		r.Get("/dashboard", s.getDashboard)

		r.Route("/collections/{collection}", func(r chi.Router) {
			r.Get("/records", s.listRecords)
			r.Post("/records", s.createRecord)
			r.Patch("/records/{id}", s.updateRecord)
			r.Delete("/records/{id}", s.deleteRecord)
			r.Get("/export", s.exportCollection)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.listUsers)
			r.Post("/", s.createUser)
			r.Patch("/{id}", s.updateUser)
			r.Delete("/{id}", s.deleteUser)
		})

		r.Post("/bookings/{id}/confirm", s.confirmBooking)
		r.Post("/bookings/{id}/reject", s.rejectBooking)
	})

	return r
}
