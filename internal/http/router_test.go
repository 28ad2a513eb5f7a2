package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/app/options"
	"github.com/preston-bernstein/character-customizer/internal/catalog"
	"github.com/preston-bernstein/character-customizer/internal/characters"
	"github.com/preston-bernstein/character-customizer/internal/http/handlers"
	"github.com/preston-bernstein/character-customizer/internal/teststubs"
	"github.com/preston-bernstein/character-customizer/internal/testutil"
)

func newRouterHandlers(t *testing.T) (*handlers.Handler, *customization.Service) {
	t.Helper()
	root := t.TempDir()
	store := characters.NewStore(filepath.Join(root, "characters"), testutil.WriteTemplate(t, root))
	chars := customization.NewService(store, &teststubs.StubOpener{}, nil, nil)
	opts := options.NewService(catalog.NewReader(testutil.NewCatalogDB(t)), nil, nil)
	return handlers.NewHandler(chars, opts, nil), chars
}

func TestRouterRoutes(t *testing.T) {
	h, _ := newRouterHandlers(t)
	router := NewRouter(h, nil)

	rr := testutil.Serve(router, nethttp.MethodPost, "/characters", strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace"}`))
	testutil.AssertStatus(t, rr, nethttp.StatusCreated)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: nethttp.MethodGet, path: "/health", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/ready", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/characters", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/characters/Ada/Lovelace", want: nethttp.StatusOK},
		{method: nethttp.MethodPut, path: "/characters/Ada/Lovelace/skintone", body: `{"skintone":"pale"}`, want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/catalog/eye-colors", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/catalog/hair-colors", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/catalog/facepaints", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/catalog/hairs?gender=Female", want: nethttp.StatusOK},
		{method: nethttp.MethodGet, path: "/catalog/extras?gender=Male&species=Human", want: nethttp.StatusOK},
		{method: nethttp.MethodDelete, path: "/characters/Ada/Lovelace", want: nethttp.StatusMethodNotAllowed},
		{method: nethttp.MethodGet, path: "/characters/Ada/Lovelace/nose", want: nethttp.StatusNotFound},
		{method: nethttp.MethodPost, path: "/admin/explorer", want: nethttp.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		rr := testutil.ServeRequest(router, req)
		if rr.Code != tt.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tt.method, tt.path, tt.want, rr.Code, rr.Body.String())
		}
	}
}

func TestRouterMountsAdminWhenConfigured(t *testing.T) {
	h, chars := newRouterHandlers(t)
	router := NewRouter(h, handlers.NewAdminHandler(chars, "secret", nil))

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/explorer", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
}
