package handlers

import (
	nethttp "net/http"
)

// EyeColors lists eye colors.
func (h *Handler) EyeColors(w nethttp.ResponseWriter, r *nethttp.Request) {
	rows, err := h.options.EyeColors(r.Context())
	h.respondRows(w, r, rows, err)
}

// HairColors lists hair colors.
func (h *Handler) HairColors(w nethttp.ResponseWriter, r *nethttp.Request) {
	rows, err := h.options.HairColors(r.Context())
	h.respondRows(w, r, rows, err)
}

// FacePaints lists face paints.
func (h *Handler) FacePaints(w nethttp.ResponseWriter, r *nethttp.Request) {
	rows, err := h.options.FacePaints(r.Context())
	h.respondRows(w, r, rows, err)
}

// Hairs lists hairstyles for ?gender=.
func (h *Handler) Hairs(w nethttp.ResponseWriter, r *nethttp.Request) {
	rows, err := h.options.Hairs(r.Context(), r.URL.Query().Get("gender"))
	h.respondRows(w, r, rows, err)
}

// Extras lists add-ons for ?gender=&species=.
func (h *Handler) Extras(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	rows, err := h.options.Extras(r.Context(), q.Get("gender"), q.Get("species"))
	h.respondRows(w, r, rows, err)
}

func (h *Handler) respondRows(w nethttp.ResponseWriter, r *nethttp.Request, rows any, err error) {
	logger := loggerFromContext(r, h.logger)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, rows, logger)
}
