package catalog

import (
	"context"
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/preston-bernstein/character-customizer/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 50 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// NewReaderWithRetry constructs a Reader that retries queries failing with
// SQLITE_BUSY or SQLITE_LOCKED. If maxAttempts/backoff are <= 0, defaults are used.
func NewReaderWithRetry(path string, maxAttempts int, backoff time.Duration) *Reader {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &Reader{
		path:        path,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func withRetry[T any](ctx context.Context, r *Reader, table string, query func() ([]T, error)) ([]T, error) {
	attempts := r.maxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		rows, err := query()
		if err == nil {
			return rows, nil
		}
		lastErr = err
		if !transient(err) || attempt == attempts {
			break
		}

		logging.Warn(logging.FromContext(ctx, nil), "catalog query retry",
			logging.FieldTable, table,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}
	return nil, lastErr
}

// transient reports whether err is a lock conflict with another connection.
func transient(err error) bool {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	switch sqlErr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	default:
		return false
	}
}
