package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router: trace-id and request-logging middleware around
// every route, the registration endpoint, the informational pages, and a
// plain-text 404 fallback.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.welcome)
	router.Get("/health", h.health)

	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
	})

	router.NotFound(h.pageNotFound)

	return router
}
