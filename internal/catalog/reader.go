// Package catalog reads selectable cosmetic options from the SQLite catalog.
// The database is owned elsewhere; every call opens it read-only, runs one
// query and closes it again.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	domaincatalog "github.com/preston-bernstein/character-customizer/internal/domain/catalog"
)

// Table names as they appear in the catalog.
const (
	TableEyeColor  = "Eye_Color"
	TableHairColor = "Hair_Color"
	TableHair      = "Hair"
	TableFacePaint = "FacePaint"
	TableExtras    = "extras"
)

const (
	queryEyeColors  = `SELECT name, color FROM Eye_Color`
	queryHairColors = `SELECT name, color FROM Hair_Color`
	queryFacePaints = `SELECT id, texture_alias FROM FacePaint`
	queryHairs      = `SELECT id, addr, name FROM Hair WHERE gender = ?`
	queryExtras     = `SELECT id, name, species, gender, addr FROM extras WHERE gender = ? AND species = ?`
)

// Reader lists catalog rows from the database at a fixed path.
type Reader struct {
	path        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewReader constructs a Reader for the catalog file at path with default retries.
func NewReader(path string) *Reader {
	return NewReaderWithRetry(path, 0, 0)
}

// Path exposes the catalog location.
func (r *Reader) Path() string {
	if r == nil {
		return ""
	}
	return r.path
}

// MaxAttempts is how many times a busy or locked query is tried.
func (r *Reader) MaxAttempts() int {
	if r == nil {
		return 0
	}
	return r.maxAttempts
}

// Available reports whether the catalog file is present.
func (r *Reader) Available() error {
	if r == nil || strings.TrimSpace(r.path) == "" {
		return errors.New("catalog path is required")
	}
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrCatalogNotFound, r.path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("catalog path %s is a directory", r.path)
	}
	return nil
}

// EyeColors lists every eye color in table order.
func (r *Reader) EyeColors(ctx context.Context) ([]domaincatalog.EyeColor, error) {
	return queryRows(ctx, r, TableEyeColor, queryEyeColors, func(rows *sql.Rows) (domaincatalog.EyeColor, error) {
		var c domaincatalog.EyeColor
		err := rows.Scan(&c.Name, &c.Color)
		return c, err
	})
}

// HairColors lists every hair color in table order.
func (r *Reader) HairColors(ctx context.Context) ([]domaincatalog.HairColor, error) {
	return queryRows(ctx, r, TableHairColor, queryHairColors, func(rows *sql.Rows) (domaincatalog.HairColor, error) {
		var c domaincatalog.HairColor
		err := rows.Scan(&c.Name, &c.Color)
		return c, err
	})
}

// FacePaints lists every face paint in table order.
func (r *Reader) FacePaints(ctx context.Context) ([]domaincatalog.FacePaint, error) {
	return queryRows(ctx, r, TableFacePaint, queryFacePaints, func(rows *sql.Rows) (domaincatalog.FacePaint, error) {
		var p domaincatalog.FacePaint
		err := rows.Scan(&p.ID, &p.TextureAlias)
		return p, err
	})
}

// Hairs lists the hairstyles available for gender.
func (r *Reader) Hairs(ctx context.Context, gender string) ([]domaincatalog.Hair, error) {
	return queryRows(ctx, r, TableHair, queryHairs, func(rows *sql.Rows) (domaincatalog.Hair, error) {
		var h domaincatalog.Hair
		err := rows.Scan(&h.ID, &h.Addr, &h.Name)
		return h, err
	}, gender)
}

// Extras lists the add-ons available for a gender and species pair.
func (r *Reader) Extras(ctx context.Context, gender, species string) ([]domaincatalog.Extra, error) {
	return queryRows(ctx, r, TableExtras, queryExtras, func(rows *sql.Rows) (domaincatalog.Extra, error) {
		var e domaincatalog.Extra
		err := rows.Scan(&e.ID, &e.Name, &e.Species, &e.Gender, &e.Addr)
		return e, err
	}, gender, species)
}

func queryRows[T any](ctx context.Context, r *Reader, table, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	if r == nil {
		return nil, &QueryError{Table: table, Err: errors.New("catalog reader not configured")}
	}
	out, err := withRetry(ctx, r, table, func() ([]T, error) {
		return queryOnce(ctx, r, query, scan, args...)
	})
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	return out, nil
}

func queryOnce[T any](ctx context.Context, r *Reader, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out), err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Reader) open(ctx context.Context) (*sql.DB, error) {
	if err := r.Available(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", readOnlyDSN(r.path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// readOnlyDSN builds a file: URI so '#', '?' and '%' in the path reach SQLite
// escaped instead of ending the path early.
func readOnlyDSN(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}
