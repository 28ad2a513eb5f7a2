package character

import (
	"errors"
	"fmt"
	"strings"
)

// Keys of the character document that the customizer writes.
const (
	KeyFirstName  = "FirstName"
	KeyLastName   = "LastName"
	KeyPlayerGUID = "PlayerGUID"
	KeyModel      = "PlayerModel"
	KeyEyeColor   = "EyeColor"
	KeyHair       = "PlayerHair"
	KeyHairColor  = "HairColor"
	KeySkintone   = "Skintone"
	KeyExtras     = "HumanBeardsPixieWings"
	KeyFacePaint  = "FacePaint"
)

// ErrInvalidIdentity is returned when a first name or surname cannot be used as a file name.
var ErrInvalidIdentity = errors.New("invalid character identity")

// Identity names a character. The pair maps to exactly one document on disk.
type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewIdentity trims and validates both name parts.
func NewIdentity(first, last string) (Identity, error) {
	id := Identity{FirstName: strings.TrimSpace(first), LastName: strings.TrimSpace(last)}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Validate rejects empty names and anything that could escape the characters directory.
func (id Identity) Validate() error {
	parts := []struct{ label, value string }{
		{"first name", id.FirstName},
		{"last name", id.LastName},
	}
	for _, p := range parts {
		label, part := p.label, p.value
		if part == "" {
			return fmt.Errorf("%w: %s required", ErrInvalidIdentity, label)
		}
		if strings.ContainsAny(part, `/\`+"\x00") || strings.Contains(part, "..") {
			return fmt.Errorf("%w: %s %q contains path characters", ErrInvalidIdentity, label, part)
		}
	}
	return nil
}

// Name is the document base name: first name and surname concatenated.
func (id Identity) Name() string {
	return id.FirstName + id.LastName
}

// FileName is the document file name inside the characters directory.
func (id Identity) FileName() string {
	return id.Name() + ".json"
}

func (id Identity) String() string {
	return id.FirstName + " " + id.LastName
}

// Document is a typed projection of the cosmetic fields of a character file.
// The file itself may carry many more keys; those are never touched.
type Document struct {
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	PlayerGUID  int64  `json:"PlayerGUID"`
	PlayerModel int64  `json:"PlayerModel"`
	EyeColor    int64  `json:"EyeColor"`
	PlayerHair  string `json:"PlayerHair"`
	HairColor   int64  `json:"HairColor"`
	Skintone    string `json:"Skintone"`
	Extras      string `json:"HumanBeardsPixieWings"`
	FacePaint   string `json:"FacePaint"`
}

// Field is a single key assignment applied to a document.
type Field struct {
	Key   string
	Value any
}

// StringField builds a string-valued assignment.
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// NumberField builds a numeric assignment.
func NumberField(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// GenderFields sets both the GUID and the model to the gender code.
func GenderFields(gender uint8) []Field {
	return []Field{
		NumberField(KeyPlayerGUID, int64(gender)),
		NumberField(KeyModel, int64(gender)),
	}
}

// HairFields sets the hairstyle address and its color together.
func HairFields(style string, color int64) []Field {
	return []Field{
		StringField(KeyHair, style),
		NumberField(KeyHairColor, color),
	}
}
