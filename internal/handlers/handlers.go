package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/Hashversion/koes/internal/config"
	"github.com/Hashversion/koes/internal/fonts"
	"github.com/Hashversion/koes/internal/metrics"
	"github.com/Hashversion/koes/internal/site"
	"github.com/Hashversion/koes/internal/templates"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config  *config.Config
	site    site.Site
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *Handlers {
	return &Handlers{
		config:  cfg,
		site:    site.New(cfg.SiteName),
		metrics: m,
		logger:  logger,
	}
}

// Page serves route as a full HTML document.
func (h *Handlers) Page(route templates.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, route, http.StatusOK)
	}
}

// NotFound serves the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, templates.NotFound(), http.StatusNotFound)
}

// FontsStylesheet serves the generated @font-face rules and font variable
// classes.
func (h *Handlers) FontsStylesheet(w http.ResponseWriter, r *http.Request) {
	css, err := fonts.Stylesheet(site.FontsPrefix, fonts.Default...)
	if err != nil {
		h.logger.Error("failed to build font stylesheet", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(css))
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// render buffers the document so a failed render never sends a partial page.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, route templates.Route, status int) {
	var buf bytes.Buffer
	start := time.Now()
	err := templates.Document(h.site, route).Render(r.Context(), &buf)
	h.metrics.ObserveRender(route.Path, time.Since(start), err)

	if err != nil {
		h.logger.Error("failed to render page", "path", route.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
