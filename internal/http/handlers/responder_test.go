package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/app/options"
	"github.com/preston-bernstein/character-customizer/internal/catalog"
	"github.com/preston-bernstein/character-customizer/internal/characters"
	"github.com/preston-bernstein/character-customizer/internal/domain/character"
	"github.com/preston-bernstein/character-customizer/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "header-id")
	writeError(rr, req, http.StatusTeapot, "boom", logger)
	if !bytes.Contains(rr.Body.Bytes(), []byte("header-id")) {
		t.Fatalf("expected header request id used when context missing")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: character.ErrInvalidIdentity, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: eye color -1", customization.ErrInvalidValue), want: http.StatusBadRequest},
		{err: options.ErrMissingFilter, want: http.StatusBadRequest},
		{err: errInvalidBody, want: http.StatusBadRequest},
		{err: &characters.Error{Op: "load", Name: "AdaLovelace", Err: characters.ErrNotFound}, want: http.StatusNotFound},
		{err: characters.ErrUnknownField, want: http.StatusUnprocessableEntity},
		{err: characters.ErrInvalidDocument, want: http.StatusUnprocessableEntity},
		{err: &catalog.QueryError{Table: "Hair", Err: catalog.ErrCatalogNotFound}, want: http.StatusServiceUnavailable},
		{err: characters.ErrTemplateNotFound, want: http.StatusServiceUnavailable},
		{err: context.Canceled, want: http.StatusServiceUnavailable},
		{err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got, _ := statusFor(tt.err); got != tt.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestWriteFailureLogsServerErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, r, errors.New("disk on fire"), logger)
	}), http.MethodGet, "/characters", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if !bytes.Contains(buf.Bytes(), []byte("disk on fire")) {
		t.Fatalf("expected cause logged, got %s", buf.String())
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("disk on fire")) {
		t.Fatalf("expected cause hidden from client, got %s", rr.Body.String())
	}
}

func TestDecodeBody(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"x"}`))
	if err := decodeBody(httptest.NewRecorder(), req, &dest); err != nil || dest.Name != "x" {
		t.Fatalf("expected decode, got %v %+v", err, dest)
	}

	big := bytes.Repeat([]byte("a"), maxBodyBytes+10)
	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"`+string(big)+`"}`))
	if err := decodeBody(httptest.NewRecorder(), req, &dest); !errors.Is(err, errInvalidBody) {
		t.Fatalf("expected oversize body rejected, got %v", err)
	}
}
