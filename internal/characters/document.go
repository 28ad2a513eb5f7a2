package characters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/preston-bernstein/character-customizer/internal/domain/character"
)

// readDocument loads a file and checks that it holds a JSON object.
func readDocument(path string, missing error) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, missing
		}
		return nil, err
	}
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	return data, nil
}

func validateDocument(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return fmt.Errorf("%w: top level value is not an object", ErrInvalidDocument)
	}
	return nil
}

// applyFields rewrites only the targeted values. When strict is set every key must already exist.
func applyFields(data []byte, strict bool, fields ...character.Field) ([]byte, error) {
	for _, f := range fields {
		if !plainKey(f.Key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, f.Key)
		}
		if strict && !gjson.GetBytes(data, f.Key).Exists() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f.Key)
		}
		next, err := sjson.SetBytes(data, f.Key, f.Value)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", f.Key, err)
		}
		data = next
	}
	return data, nil
}

// plainKey limits keys to identifiers so they are never read as gjson path syntax.
func plainKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

func project(data []byte) character.Document {
	r := gjson.ParseBytes(data)
	return character.Document{
		FirstName:   r.Get(character.KeyFirstName).String(),
		LastName:    r.Get(character.KeyLastName).String(),
		PlayerGUID:  r.Get(character.KeyPlayerGUID).Int(),
		PlayerModel: r.Get(character.KeyModel).Int(),
		EyeColor:    r.Get(character.KeyEyeColor).Int(),
		PlayerHair:  r.Get(character.KeyHair).String(),
		HairColor:   r.Get(character.KeyHairColor).Int(),
		Skintone:    r.Get(character.KeySkintone).String(),
		Extras:      r.Get(character.KeyExtras).String(),
		FacePaint:   r.Get(character.KeyFacePaint).String(),
	}
}

// writeAtomic replaces target through a temp file in the same directory so readers never see a partial write.
func writeAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return err
	}
	return nil
}
