package catalog

import (
	"errors"
	"fmt"
)

// ErrCatalogNotFound is returned when the catalog database file does not exist.
var ErrCatalogNotFound = errors.New("catalog database not found")

// QueryError wraps any failure raised while listing a catalog table.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("catalog: query %s: %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
