// Package index maintains the derived SQLite member index.
//
// The enriched JSON file is the source of truth; the index is a
// disposable cache rebuilt from it on demand. It exists to give the
// query and stats commands real filtering without loading and scanning
// the whole document each time.
package index

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/pvmonteiro/tronco/internal/dates"
	"github.com/pvmonteiro/tronco/internal/model"
)

// DirName is the per-project directory holding the index database.
const DirName = ".tronco"

// ErrMemberNotFound indicates the requested ID is not in the index.
var ErrMemberNotFound = errors.New("member not found in index")

// Database is the SQLite index handle.
type Database struct {
	db *sql.DB
}

// Open opens or creates the index database under dir/.tronco.
func Open(dir string) (*Database, error) {
	dbDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dbDir, "index.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	_, err := d.db.Exec(`
		PRAGMA journal_mode=WAL;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS members (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			legal_name TEXT NOT NULL,
			generation INTEGER NOT NULL,
			gender TEXT NOT NULL,
			birth_year INTEGER,
			death_year INTEGER,
			has_vitals INTEGER NOT NULL DEFAULT 0,
			has_parents INTEGER NOT NULL DEFAULT 0,
			photo_key TEXT,
			record TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_members_generation ON members(generation);
		CREATE INDEX IF NOT EXISTS idx_members_name ON members(name);
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize index schema: %w", err)
	}
	return nil
}

// Rebuild replaces the index contents with the document's members.
func (d *Database) Rebuild(doc *model.Document) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM members`); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM meta`); err != nil {
		return fmt.Errorf("failed to clear meta: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO members
			(id, name, legal_name, generation, gender, birth_year, death_year,
			 has_vitals, has_parents, photo_key, record)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range doc.FamilyMembers {
		record, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode member %s: %w", m.ID, err)
		}

		hasVitals := !m.VitalInfo.Birth.IsEmpty() || !m.VitalInfo.Death.IsEmpty()
		hasParents := m.Parents.Father != "" || m.Parents.Mother != ""

		_, err = stmt.Exec(
			m.ID, m.Name, m.LegalName, m.Generation, string(m.Gender),
			nullableYear(m.VitalInfo.Birth.Date), nullableYear(m.VitalInfo.Death.Date),
			boolToInt(hasVitals), boolToInt(hasParents), m.PhotoKey, string(record),
		)
		if err != nil {
			return fmt.Errorf("failed to index member %s: %w", m.ID, err)
		}
	}

	for key, value := range map[string]string{
		"version":     doc.Metadata.Version,
		"lastUpdated": doc.Metadata.LastUpdated,
		"source":      doc.Metadata.Source,
	} {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to write meta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rebuild: %w", err)
	}
	return nil
}

// RebuildFromFile loads the data file and rebuilds the index from it.
func RebuildFromFile(dir, dataPath string) (*Database, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", dataPath, err)
	}

	d, err := Open(dir)
	if err != nil {
		return nil, err
	}
	if err := d.Rebuild(&doc); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Get returns the full member record for an ID.
func (d *Database) Get(id string) (*model.Member, error) {
	var record string
	err := d.db.QueryRow(`SELECT record FROM members WHERE id = ?`, id).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load member %s: %w", id, err)
	}

	var m model.Member
	if err := json.Unmarshal([]byte(record), &m); err != nil {
		return nil, fmt.Errorf("failed to decode member %s: %w", id, err)
	}
	return &m, nil
}

func nullableYear(isoDate string) interface{} {
	if y := dates.Year(isoDate); y != 0 {
		return y
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
