package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// TemplateJSON is a seed document shaped like Fallback.json, including keys the customizer never touches.
const TemplateJSON = `{
  "FirstName": "",
  "LastName": "",
  "PlayerGUID": 0,
  "PlayerModel": 0,
  "EyeColor": 0,
  "PlayerHair": "",
  "HairColor": 0,
  "Skintone": "",
  "HumanBeardsPixieWings": "",
  "FacePaint": "",
  "Level": 1,
  "Inventory": ["sword", "shield"],
  "Position": {"x": 1.5, "y": -2}
}
`

// WriteTemplate writes TemplateJSON into dir and returns its path.
func WriteTemplate(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "Fallback.json")
	if err := os.WriteFile(path, []byte(TemplateJSON), 0o644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return path
}

const catalogSchema = `
CREATE TABLE Eye_Color (name TEXT NOT NULL, color INTEGER NOT NULL);
CREATE TABLE Hair_Color (name TEXT NOT NULL, color INTEGER NOT NULL);
CREATE TABLE Hair (id INTEGER PRIMARY KEY, addr TEXT NOT NULL, name TEXT NOT NULL, gender TEXT NOT NULL);
CREATE TABLE FacePaint (id INTEGER PRIMARY KEY, texture_alias TEXT NOT NULL);
CREATE TABLE extras (id INTEGER PRIMARY KEY, name TEXT NOT NULL, species TEXT NOT NULL, gender TEXT NOT NULL, addr TEXT NOT NULL);
`

const catalogSeed = `
INSERT INTO Eye_Color (name, color) VALUES ('Blue', 3), ('Green', 5), ('Brown', 1);
INSERT INTO Hair_Color (name, color) VALUES ('Black', 0), ('Blonde', 2);
INSERT INTO Hair (id, addr, name, gender) VALUES
  (1, 'hair/m_short', 'Short', 'Male'),
  (2, 'hair/f_long', 'Long', 'Female'),
  (3, 'hair/m_mohawk', 'Mohawk', 'Male');
INSERT INTO FacePaint (id, texture_alias) VALUES (1, 'tribal'), (2, 'warpaint');
INSERT INTO extras (id, name, species, gender, addr) VALUES
  (1, 'Beard', 'Human', 'Male', 'extras/beard_01'),
  (2, 'Wings', 'Pixie', 'Female', 'extras/wings_01'),
  (3, 'Wings', 'Pixie', 'Male', 'extras/wings_02');
`

// NewCatalogDB creates a seeded catalog database in a temp dir and returns its path.
func NewCatalogDB(t *testing.T) string {
	t.Helper()
	return newCatalog(t, catalogSchema+catalogSeed)
}

// NewEmptyCatalogDB creates the catalog tables without rows.
func NewEmptyCatalogDB(t *testing.T) string {
	t.Helper()
	return newCatalog(t, catalogSchema)
}

func newCatalog(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(script); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	return path
}
