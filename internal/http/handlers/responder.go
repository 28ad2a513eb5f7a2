package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/app/options"
	"github.com/preston-bernstein/character-customizer/internal/catalog"
	"github.com/preston-bernstein/character-customizer/internal/characters"
	"github.com/preston-bernstein/character-customizer/internal/domain/character"
	"github.com/preston-bernstein/character-customizer/internal/http/middleware"
	"github.com/preston-bernstein/character-customizer/internal/logging"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeRaw(w http.ResponseWriter, status int, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil && logger != nil {
		logger.Error("failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeFailure maps a service error onto a status code and writes it.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, status))
	}
	writeError(w, r, status, message, logger)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, character.ErrInvalidIdentity),
		errors.Is(err, customization.ErrInvalidValue),
		errors.Is(err, options.ErrMissingFilter),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, characters.ErrNotFound):
		return http.StatusNotFound, "character not found"
	case errors.Is(err, characters.ErrUnknownField), errors.Is(err, characters.ErrInvalidDocument):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, catalog.ErrCatalogNotFound):
		return http.StatusServiceUnavailable, "catalog unavailable"
	case errors.Is(err, characters.ErrTemplateNotFound):
		return http.StatusServiceUnavailable, "character template unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request canceled"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// decodeBody reads a single JSON object into dest.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errInvalidBody)
		}
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", errInvalidBody)
	}
	return nil
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
