// Package httpapi exposes the entity searches over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/zoobzio/filterql/entities"
)

// RequestIDHeader echoes the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

// Handler serves the search endpoints.
type Handler struct {
	catalog *entities.Catalog
	logger  *slog.Logger
}

// NewHandler creates a handler over the catalog.
func NewHandler(catalog *entities.Catalog, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{catalog: catalog, logger: logger}
}

// Routes returns the router with every route registered.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.requestLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/entities", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, h.catalog.Names())
		})
		r.Post("/{entity}/search", h.Search)
	})
	return r
}

// statusWriter records the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// requestLog assigns a request id and logs one line per request.
func (h *Handler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)

		h.logger.Info("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"elapsed", time.Since(start))
	})
}
