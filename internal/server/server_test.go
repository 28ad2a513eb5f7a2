package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/character-customizer/internal/config"
	"github.com/preston-bernstein/character-customizer/internal/metrics"
	"github.com/preston-bernstein/character-customizer/internal/teststubs"
	"github.com/preston-bernstein/character-customizer/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	return config.Config{
		Port:            "0",
		CharactersDir:   filepath.Join(root, "characters"),
		TemplatePath:    testutil.WriteTemplate(t, root),
		CatalogPath:     testutil.NewCatalogDB(t),
		ShutdownTimeout: time.Second,
	}
}

func TestServerServesCharacterLifecycle(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	srv := newServerWithMetrics(testConfig(t), logger, rec, &teststubs.StubOpener{})
	handler := srv.Handler()

	rr := testutil.Serve(handler, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(handler, http.MethodPost, "/characters", strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace"}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected middleware to set request id")
	}

	rr = testutil.Serve(handler, http.MethodPut, "/characters/Ada/Lovelace/hair", strings.NewReader(`{"style":"hair/f_long","color":2}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var doc map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["PlayerHair"] != "hair/f_long" || doc["HairColor"] != float64(2) {
		t.Fatalf("unexpected document %v", doc)
	}

	if snap := rec.CharacterSnapshot("hair"); snap.Calls != 1 {
		t.Fatalf("expected hair op recorded, got %+v", snap)
	}
}

func TestServerServesCatalog(t *testing.T) {
	srv := newServerWithMetrics(testConfig(t), nil, metrics.NewRecorder(), &teststubs.StubOpener{})
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/catalog/hairs?gender=Male", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var rows []map[string]any
	testutil.DecodeJSON(t, rr, &rows)
	if len(rows) != 2 {
		t.Fatalf("expected two hairstyles, got %v", rows)
	}
}

func TestAdminRouteMountedOnlyWithToken(t *testing.T) {
	opener := &teststubs.StubOpener{}
	cfg := testConfig(t)
	srv := newServerWithMetrics(cfg, nil, metrics.NewRecorder(), opener)

	req := httptest.NewRequest(http.MethodPost, "/admin/explorer", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	cfg.AdminToken = "secret"
	srv = newServerWithMetrics(cfg, nil, metrics.NewRecorder(), opener)
	req = httptest.NewRequest(http.MethodPost, "/admin/explorer", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if opener.LastDir() != cfg.CharactersDir {
		t.Fatalf("expected characters dir opened, got %s", opener.LastDir())
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.characters == nil || srv.options == nil {
		t.Fatalf("expected services wired")
	}
}

func TestLogStartupWarnsOnMissingInputs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	root := t.TempDir()
	cfg := config.Config{
		CharactersDir: filepath.Join(root, "characters"),
		TemplatePath:  filepath.Join(root, "missing.json"),
		CatalogPath:   filepath.Join(root, "missing.db"),
	}
	srv := newServerWithMetrics(cfg, logger, metrics.NewRecorder(), nil)
	srv.logStartup()

	out := buf.String()
	if !strings.Contains(out, "character template unavailable") || !strings.Contains(out, "catalog unavailable") {
		t.Fatalf("expected both warnings, got %s", out)
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return nil
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 || stopCalls != 1 {
		t.Fatalf("expected every component shut down once, got http=%d metrics=%d stop=%d",
			httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls, stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	srv := newServerWithDeps(config.Config{ShutdownTimeout: 5 * time.Millisecond}, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownLogsFailure(t *testing.T) {
	logger, logBuf := testutil.NewBufferLogger()
	httpSrv := &testutil.StubHTTPServer{ShutdownErr: context.DeadlineExceeded}

	srv := newServerWithDeps(config.Config{}, logger, httpSrv)
	srv.gracefulShutdown()

	if !strings.Contains(logBuf.String(), "graceful shutdown failed") {
		t.Fatalf("expected shutdown failure logged, got %s", logBuf.String())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
