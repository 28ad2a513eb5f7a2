package handlers

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/character-customizer/internal/domain/character"
	"github.com/preston-bernstein/character-customizer/internal/logging"
)

type createRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type createResponse struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
}

// ListCharacters returns the stored character names.
func (h *Handler) ListCharacters(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	names, err := h.characters.Characters(r.Context())
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]string{"characters": names}, logger)
}

// CreateCharacter seeds a character from the template.
func (h *Handler) CreateCharacter(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	var req createRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	id, err := character.NewIdentity(req.FirstName, req.LastName)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	created, err := h.characters.Create(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	status := nethttp.StatusOK
	if created {
		status = nethttp.StatusCreated
	}
	writeJSON(w, status, createResponse{Name: id.Name(), Created: created}, logger)
}

// GetCharacter returns the stored document as written on disk.
func (h *Handler) GetCharacter(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	id, err := identityFromPath(r)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	data, err := h.characters.Character(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeRaw(w, nethttp.StatusOK, data, logger)
}

// SetGender handles PUT .../gender.
func (h *Handler) SetGender(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Gender *uint8 `json:"gender"`
	}
	h.mutate(w, r, &body, func(id character.Identity) error {
		if body.Gender == nil {
			return missing("gender")
		}
		return h.characters.SetGender(r.Context(), id, *body.Gender)
	})
}

// SetEyeColor handles PUT .../eyes.
func (h *Handler) SetEyeColor(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		EyeColor *int64 `json:"eyeColor"`
	}
	h.mutate(w, r, &body, func(id character.Identity) error {
		if body.EyeColor == nil {
			return missing("eyeColor")
		}
		return h.characters.SetEyeColor(r.Context(), id, *body.EyeColor)
	})
}

// SetHair handles PUT .../hair.
func (h *Handler) SetHair(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Style *string `json:"style"`
		Color *int64  `json:"color"`
	}
	h.mutate(w, r, &body, func(id character.Identity) error {
		if body.Style == nil || body.Color == nil {
			return missing("style and color")
		}
		return h.characters.SetHair(r.Context(), id, *body.Style, *body.Color)
	})
}

// SetSkintone handles PUT .../skintone.
func (h *Handler) SetSkintone(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Skintone *string `json:"skintone"`
	}
	h.mutate(w, r, &body, func(id character.Identity) error {
		if body.Skintone == nil {
			return missing("skintone")
		}
		return h.characters.SetSkintone(r.Context(), id, *body.Skintone)
	})
}

// SetExtras handles PUT .../extras.
func (h *Handler) SetExtras(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Extra *string `json:"extra"`
	}
	h.mutate(w, r, &body, func(id character.Identity) error {
		if body.Extra == nil {
			return missing("extra")
		}
		return h.characters.SetExtras(r.Context(), id, *body.Extra)
	})
}

// SetFacePaint handles PUT .../facepaint.
func (h *Handler) SetFacePaint(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		FacePaint *string `json:"facePaint"`
	}
	h.mutate(w, r, &body, func(id character.Identity) error {
		if body.FacePaint == nil {
			return missing("facePaint")
		}
		return h.characters.SetFacePaint(r.Context(), id, *body.FacePaint)
	})
}

// mutate decodes body, applies the change and answers with the updated fields.
func (h *Handler) mutate(w nethttp.ResponseWriter, r *nethttp.Request, body any, apply func(character.Identity) error) {
	logger := loggerFromContext(r, h.logger)
	id, err := identityFromPath(r)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	if err := decodeBody(w, r, body); err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	if err := apply(id); err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	doc, err := h.characters.Document(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	logging.Info(logger, "character mutation served", slog.String(logging.FieldCharacter, id.Name()))
	writeJSON(w, nethttp.StatusOK, doc, logger)
}

func identityFromPath(r *nethttp.Request) (character.Identity, error) {
	return character.NewIdentity(r.PathValue("first"), r.PathValue("last"))
}

func missing(field string) error {
	return fmt.Errorf("%w: %s required", errInvalidBody, field)
}
