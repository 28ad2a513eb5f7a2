package characters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/preston-bernstein/character-customizer/internal/domain/character"
)

// Store reads and rewrites character documents under a single directory.
type Store struct {
	dir          string
	templatePath string
	locks        *keyedMutex
}

// NewStore constructs a filesystem store rooted at dir that seeds new characters from templatePath.
func NewStore(dir, templatePath string) *Store {
	return &Store{
		dir:          dir,
		templatePath: templatePath,
		locks:        newKeyedMutex(),
	}
}

// Dir exposes the characters directory.
func (s *Store) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// TemplatePath exposes the template location.
func (s *Store) TemplatePath() string {
	if s == nil {
		return ""
	}
	return s.templatePath
}

// Ready reports whether the template can seed new characters.
func (s *Store) Ready() error {
	if s == nil {
		return errNotConfigured
	}
	info, err := os.Stat(s.templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return wrap("ready", "", ErrTemplateNotFound)
		}
		return wrap("ready", "", err)
	}
	if info.IsDir() {
		return wrap("ready", "", fmt.Errorf("%w: %s is a directory", ErrTemplateNotFound, s.templatePath))
	}
	return nil
}

// Path returns the document path for id.
func (s *Store) Path(id character.Identity) string {
	return filepath.Join(s.dir, id.FileName())
}

// Exists reports whether the document for id is present.
func (s *Store) Exists(id character.Identity) bool {
	if s == nil || id.Validate() != nil {
		return false
	}
	info, err := os.Stat(s.Path(id))
	return err == nil && !info.IsDir()
}

// Create seeds a new document from the template. It returns false without
// writing anything when the document already exists.
func (s *Store) Create(ctx context.Context, id character.Identity) (bool, error) {
	const op = "create"
	if err := s.check(ctx, id); err != nil {
		return false, wrap(op, id.Name(), err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return false, wrap(op, id.Name(), err)
	}

	unlock := s.locks.lock(id.Name())
	defer unlock()

	target := s.Path(id)
	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, wrap(op, id.Name(), err)
	}

	template, err := readDocument(s.templatePath, ErrTemplateNotFound)
	if err != nil {
		return false, wrap(op, id.Name(), fmt.Errorf("template %s: %w", s.templatePath, err))
	}
	data, err := applyFields(template, false,
		character.StringField(character.KeyFirstName, id.FirstName),
		character.StringField(character.KeyLastName, id.LastName),
	)
	if err != nil {
		return false, wrap(op, id.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return false, wrap(op, id.Name(), err)
	}
	if err := writeAtomic(target, data); err != nil {
		return false, wrap(op, id.Name(), err)
	}
	return true, nil
}

// Load returns the raw document bytes.
func (s *Store) Load(ctx context.Context, id character.Identity) ([]byte, error) {
	const op = "load"
	if err := s.check(ctx, id); err != nil {
		return nil, wrap(op, id.Name(), err)
	}
	data, err := readDocument(s.Path(id), ErrNotFound)
	if err != nil {
		return nil, wrap(op, id.Name(), err)
	}
	return data, nil
}

// Document returns the cosmetic fields of a character.
func (s *Store) Document(ctx context.Context, id character.Identity) (character.Document, error) {
	data, err := s.Load(ctx, id)
	if err != nil {
		return character.Document{}, err
	}
	return project(data), nil
}

// Patch overwrites the given keys and rewrites the document. Every key must
// already be present; other bytes of the file are left as they were.
func (s *Store) Patch(ctx context.Context, id character.Identity, fields ...character.Field) error {
	const op = "patch"
	if err := s.check(ctx, id); err != nil {
		return wrap(op, id.Name(), err)
	}
	if len(fields) == 0 {
		return wrap(op, id.Name(), errors.New("no fields to set"))
	}

	unlock := s.locks.lock(id.Name())
	defer unlock()

	target := s.Path(id)
	data, err := readDocument(target, ErrNotFound)
	if err != nil {
		return wrap(op, id.Name(), err)
	}
	patched, err := applyFields(data, true, fields...)
	if err != nil {
		return wrap(op, id.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return wrap(op, id.Name(), err)
	}
	if err := writeAtomic(target, patched); err != nil {
		return wrap(op, id.Name(), err)
	}
	return nil
}

// List returns the base names of stored documents in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	const op = "list"
	if s == nil {
		return nil, wrap(op, "", errNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return nil, wrap(op, "", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, wrap(op, "", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) check(ctx context.Context, id character.Identity) error {
	if s == nil {
		return errNotConfigured
	}
	if err := id.Validate(); err != nil {
		return err
	}
	return ctx.Err()
}
