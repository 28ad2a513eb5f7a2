package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestWriteTemplate(t *testing.T) {
	path := WriteTemplate(t, t.TempDir())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read template: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("template is not valid JSON: %v", err)
	}
	if _, ok := doc["HumanBeardsPixieWings"]; !ok {
		t.Fatalf("expected template to carry extras key")
	}
}

func TestNewCatalogDBSeedsRows(t *testing.T) {
	path := NewCatalogDB(t)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM Eye_Color").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 eye colors, got %d", count)
	}
}

func TestNewEmptyCatalogDBHasNoRows(t *testing.T) {
	path := NewEmptyCatalogDB(t)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM extras").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty extras, got %d", count)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/x", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)

	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok body, got %+v", body)
	}

	req := httptest.NewRequest(http.MethodGet, "/y", nil)
	rr = ServeRequest(handler, req)
	AssertStatus(t, rr, http.StatusCreated)
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected buffered log output, got %q", buf.String())
	}
}

func TestRecorderWithShutdown(t *testing.T) {
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestHTTPServerStubs(t *testing.T) {
	stub := &StubHTTPServer{AddrVal: ":1", ListenErr: errors.New("boom")}
	if err := stub.ListenAndServe(); err == nil || stub.ListenCalls != 1 {
		t.Fatalf("expected listen error and call count")
	}
	if err := stub.Shutdown(context.Background()); err != nil || stub.ShutdownCalls != 1 {
		t.Fatalf("unexpected shutdown result")
	}

	errSrv := &ErrHTTPServer{}
	if err := errSrv.ListenAndServe(); err == nil {
		t.Fatalf("expected listen failure")
	}

	closeable := &CloseableHTTPServer{}
	if err := closeable.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}

	blocking := &BlockingHTTPServer{Unblock: make(chan struct{})}
	close(blocking.Unblock)
	if err := blocking.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected unblocked shutdown, got %v", err)
	}
}
