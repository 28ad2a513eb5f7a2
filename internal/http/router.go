package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/character-customizer/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin route is mounted only when admin is non-nil.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /characters", h.ListCharacters)
	mux.HandleFunc("POST /characters", h.CreateCharacter)
	mux.HandleFunc("GET /characters/{first}/{last}", h.GetCharacter)
	mux.HandleFunc("PUT /characters/{first}/{last}/gender", h.SetGender)
	mux.HandleFunc("PUT /characters/{first}/{last}/eyes", h.SetEyeColor)
	mux.HandleFunc("PUT /characters/{first}/{last}/hair", h.SetHair)
	mux.HandleFunc("PUT /characters/{first}/{last}/skintone", h.SetSkintone)
	mux.HandleFunc("PUT /characters/{first}/{last}/extras", h.SetExtras)
	mux.HandleFunc("PUT /characters/{first}/{last}/facepaint", h.SetFacePaint)

	mux.HandleFunc("GET /catalog/eye-colors", h.EyeColors)
	mux.HandleFunc("GET /catalog/hair-colors", h.HairColors)
	mux.HandleFunc("GET /catalog/facepaints", h.FacePaints)
	mux.HandleFunc("GET /catalog/hairs", h.Hairs)
	mux.HandleFunc("GET /catalog/extras", h.Extras)

	if admin != nil {
		mux.HandleFunc("POST /admin/explorer", admin.OpenExplorer)
	}
	return mux
}
