// Package router sets up all HTTP routes and middleware chains for the
// Brand Studio API. Routes are grouped by concern: catalog reads,
// rendering, and work persistence.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandstudio/internal/handlers"
	"brandstudio/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(limiter *middleware.RateLimiter, catalog *handlers.Catalog, studio *handlers.Studio, works *handlers.Works) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — not rate limited.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		// Template catalog — read only.
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", catalog.TemplatesList)
			r.Get("/{id}", catalog.TemplateGet)
		})
		r.Get("/formats/{group}", catalog.FormatVariants)

		// Rendering surface.
		r.Post("/preview", studio.Preview)
		r.Post("/export", studio.Export)
		r.Post("/assets/preload", studio.PreloadAssets)

		// Recent works.
		r.Route("/works", func(r chi.Router) {
			r.Get("/", works.List)
			r.Post("/", works.Save)
			r.Get("/{id}", works.Get)
			r.Delete("/{id}", works.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
