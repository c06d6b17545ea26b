package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/note-keeper/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.root)
		r.Get("/health", h.health)

		r.Route("/api/v1", func(r chi.Router) {
			// routes without authorization
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/users/me", h.me)

				r.Get("/notes", h.listNotes)
				r.Post("/notes", h.createNote)
				r.Delete("/notes/{note_id}", h.deleteNote)
			})
		})
	})

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, detailNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, detailMethodNotAllowed, http.StatusMethodNotAllowed)
}
