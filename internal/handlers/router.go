package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Hashversion/koes/internal/middleware"
	"github.com/Hashversion/koes/internal/site"
	"github.com/Hashversion/koes/internal/static"
	"github.com/Hashversion/koes/internal/templates"
)

// Router wires every route and the global middleware.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.Metrics(h.metrics))

	// Assets
	r.Get(site.FontsStylesheetPath, h.FontsStylesheet)
	r.Handle(site.StaticPrefix+"*", http.StripPrefix(site.StaticPrefix, http.FileServer(http.FS(static.FS()))))
	r.Handle(site.FontsPrefix+"*", http.StripPrefix(site.FontsPrefix, http.FileServer(http.Dir(h.config.FontsDir))))

	// Operational
	r.Get("/health", h.Health)
	r.Handle("/metrics", h.metrics.Handler())

	// Pages
	for _, route := range templates.Routes() {
		r.Get(route.Path, h.Page(route))
	}
	r.NotFound(h.NotFound)

	return r
}
