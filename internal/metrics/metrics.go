package metrics

import (
	"sync"
	"time"
)

type opStats struct {
	calls       int
	errors      int
	rows        int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about character writes and
// catalog reads, and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*opStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*opStats),
		otel:  otel,
	}
}

// Snapshot is a copy of the stats recorded for one operation or table.
type Snapshot struct {
	Calls       int
	Errors      int
	Rows        int
	LastLatency time.Duration
}

// RecordCharacterOp counts a character store operation (create, gender, eyes, ...).
func (r *Recorder) RecordCharacterOp(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.update(characterKey(op), duration, 0, err)
	if r.otel != nil {
		r.otel.recordCharacterOp(op, duration, err)
	}
}

// RecordCatalogQuery counts a catalog query and the rows it returned.
func (r *Recorder) RecordCatalogQuery(table string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.update(catalogKey(table), duration, rows, err)
	if r.otel != nil {
		r.otel.recordCatalogQuery(table, rows, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// CharacterSnapshot returns the stats recorded for a character operation.
func (r *Recorder) CharacterSnapshot(op string) Snapshot {
	return r.snapshot(characterKey(op))
}

// CatalogSnapshot returns the stats recorded for a catalog table.
func (r *Recorder) CatalogSnapshot(table string) Snapshot {
	return r.snapshot(catalogKey(table))
}

func characterKey(op string) string  { return "character:" + op }
func catalogKey(table string) string { return "catalog:" + table }

func (r *Recorder) update(key string, duration time.Duration, rows int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[key]
	if !ok {
		stats = &opStats{}
		r.stats[key] = stats
	}
	stats.calls++
	stats.rows += rows
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
}

func (r *Recorder) snapshot(key string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[key]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		Rows:        stats.rows,
		LastLatency: stats.lastLatency,
	}
}
