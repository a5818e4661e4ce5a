package index

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pvmonteiro/tronco/internal/sqlutil"
)

// Filter narrows a member query. Zero values mean "any"; Generation uses
// -1 for "any" since 0 is a real generation.
type Filter struct {
	// Name matches as a case-insensitive substring of name or legal
	// name. Case folding is ASCII-only (SQLite lower()), so accented
	// letters must be given in the case they appear in the data.
	Name string

	Generation int

	// MissingVitals keeps only members without birth or death info.
	MissingVitals bool

	// MissingParents keeps only members without parent names.
	MissingParents bool
}

// AnyGeneration is the Filter.Generation value that disables the filter.
const AnyGeneration = -1

// Row is one query result line.
type Row struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Generation int    `json:"generation"`
	Gender     string `json:"gender"`
	BirthYear  int    `json:"birthYear,omitempty"`
	DeathYear  int    `json:"deathYear,omitempty"`
}

// Query returns members matching the filter, ordered by generation and
// then ID.
func (d *Database) Query(f Filter) ([]Row, error) {
	var conds []string
	var args []interface{}

	if f.Name != "" {
		conds = append(conds, "(instr(lower(name), ?) > 0 OR instr(lower(legal_name), ?) > 0)")
		needle := strings.ToLower(f.Name)
		args = append(args, needle, needle)
	}
	if f.Generation != AnyGeneration {
		conds = append(conds, "generation = ?")
		args = append(args, f.Generation)
	}
	if f.MissingVitals {
		conds = append(conds, "has_vitals = 0")
	}
	if f.MissingParents {
		conds = append(conds, "has_parents = 0")
	}

	query := `SELECT id, name, generation, gender, birth_year, death_year FROM members`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY generation, id"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}

	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Row, error) {
		var r Row
		var birth, death *int
		if err := rows.Scan(&r.ID, &r.Name, &r.Generation, &r.Gender, &birth, &death); err != nil {
			return r, fmt.Errorf("failed to scan member row: %w", err)
		}
		if birth != nil {
			r.BirthYear = *birth
		}
		if death != nil {
			r.DeathYear = *death
		}
		return r, nil
	})
}

// GenerationCount is one line of the per-generation breakdown.
type GenerationCount struct {
	Generation int `json:"generation"`
	Members    int `json:"members"`
}

// Stats summarizes the indexed collection.
type Stats struct {
	TotalMembers int               `json:"totalMembers"`
	Generations  []GenerationCount `json:"generations"`
	WithVitals   int               `json:"withVitals"`
	WithParents  int               `json:"withParents"`
	ByGender     map[string]int    `json:"byGender"`
	Version      string            `json:"version,omitempty"`
	LastUpdated  string            `json:"lastUpdated,omitempty"`
	Source       string            `json:"source,omitempty"`
}

// Stats computes collection statistics from the index.
func (d *Database) Stats() (*Stats, error) {
	s := &Stats{ByGender: make(map[string]int)}

	err := d.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(has_vitals), 0),
		       COALESCE(SUM(has_parents), 0)
		FROM members
	`).Scan(&s.TotalMembers, &s.WithVitals, &s.WithParents)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	rows, err := d.db.Query(`SELECT generation, COUNT(*) FROM members GROUP BY generation ORDER BY generation`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute generation counts: %w", err)
	}
	s.Generations, err = sqlutil.ScanRows(rows, func(rows *sql.Rows) (GenerationCount, error) {
		var gc GenerationCount
		err := rows.Scan(&gc.Generation, &gc.Members)
		return gc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan generation counts: %w", err)
	}

	grows, err := d.db.Query(`SELECT gender, COUNT(*) FROM members GROUP BY gender`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute gender counts: %w", err)
	}
	defer grows.Close()
	for grows.Next() {
		var gender string
		var n int
		if err := grows.Scan(&gender, &n); err != nil {
			return nil, fmt.Errorf("failed to scan gender count: %w", err)
		}
		s.ByGender[gender] = n
	}
	if err := grows.Err(); err != nil {
		return nil, err
	}

	meta, err := d.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	defer meta.Close()
	for meta.Next() {
		var key, value string
		if err := meta.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan meta: %w", err)
		}
		switch key {
		case "version":
			s.Version = value
		case "lastUpdated":
			s.LastUpdated = value
		case "source":
			s.Source = value
		}
	}
	return s, meta.Err()
}
