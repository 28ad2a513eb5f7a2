package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/app/options"
	"github.com/preston-bernstein/character-customizer/internal/logging"
)

// Handler wires HTTP routes to the character and catalog services.
type Handler struct {
	characters *customization.Service
	options    *options.Service
	logger     *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(characters *customization.Service, opts *options.Service, logger *slog.Logger) *Handler {
	return &Handler{
		characters: characters,
		options:    opts,
		logger:     logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the template and catalog are in place.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.characters == nil || h.options == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "services not configured", logger)
		return
	}
	if err := h.characters.Ready(); err != nil {
		logging.Warn(logger, "not ready", "reason", "template", "error", err)
		writeError(w, r, nethttp.StatusServiceUnavailable, "character template unavailable", logger)
		return
	}
	if err := h.options.Ready(); err != nil {
		logging.Warn(logger, "not ready", "reason", "catalog", "error", err)
		writeError(w, r, nethttp.StatusServiceUnavailable, "catalog unavailable", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, logger)
}
