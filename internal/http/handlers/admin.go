package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/http/requestutil"
	"github.com/preston-bernstein/character-customizer/internal/logging"
)

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	characters *customization.Service
	token      string
	logger     *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(characters *customization.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		characters: characters,
		token:      token,
		logger:     logger,
	}
}

// OpenExplorer shows the characters folder in the host's file browser.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) OpenExplorer(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.characters == nil {
		writeError(w, r, http.StatusServiceUnavailable, "explorer not configured", logger)
		return
	}
	if err := h.characters.OpenFolder(r.Context()); err != nil {
		logging.Warn(logger, "admin explorer failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "failed to open characters folder", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
