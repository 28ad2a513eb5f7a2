package characters

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a character document does not exist.
	ErrNotFound = errors.New("character not found")
	// ErrTemplateNotFound is returned when the seed template is missing.
	ErrTemplateNotFound = errors.New("character template not found")
	// ErrInvalidDocument is returned when a file is not a JSON object.
	ErrInvalidDocument = errors.New("invalid character document")
	// ErrUnknownField is returned when a patch targets a key the document does not carry.
	ErrUnknownField  = errors.New("unknown character field")
	errNotConfigured = errors.New("character store not configured")
)

// Error records the failed operation and the character it applied to.
type Error struct {
	Op   string
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("characters: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("characters: %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Name: name, Err: err}
}
