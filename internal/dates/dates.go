// Package dates provides canonical parsing of the date phrases found in the
// source genealogy text.
//
// This package exists to avoid duplicating date normalization across:
// - vital info extraction (birth/death)
// - marriage clauses
// - validation and completeness scoring
// - the member index
//
// Source dates are Portuguese free text. Normalization is best effort: a
// phrase that matches no known form keeps its original text and yields no
// ISO date, so nothing is lost for display.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	yearRegex    = regexp.MustCompile(`^~?\s*(\d{4})$`)
	writtenRegex = regexp.MustCompile(`^(\d{1,2})º?\s+de\s+([\p{L}ç]+)\s+de\s+(\d{4})$`)
)

// months maps lowercase Portuguese month names to their number.
var months = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// Parsed is the result of normalizing a date phrase.
type Parsed struct {
	// ISO is the normalized YYYY-MM-DD value, empty when the phrase did
	// not match any known form. Day and month default to 01 when the
	// source only gives a year.
	ISO string

	// Formatted preserves the original phrase for display.
	Formatted string

	// Approximate is true for "~YYYY" phrases.
	Approximate bool
}

// Normalize parses a date phrase from the source text.
//
// Recognized forms:
//   - "15/03/1920"           -> 1920-03-15
//   - "1920" and "~1920"     -> 1920-01-01
//   - "15 de março de 1920"  -> 1920-03-15
//   - "1920-03-15"           -> kept as-is
//
// Anything else keeps the raw text in Formatted with an empty ISO value.
func Normalize(raw string) Parsed {
	trimmed := strings.TrimSpace(raw)
	p := Parsed{Formatted: trimmed}
	if trimmed == "" {
		return p
	}

	if isoRegex.MatchString(trimmed) {
		if _, err := time.Parse("2006-01-02", trimmed); err == nil {
			p.ISO = trimmed
		}
		return p
	}

	if m := dmyRegex.FindStringSubmatch(trimmed); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if iso, ok := buildISO(year, time.Month(month), day); ok {
			p.ISO = iso
		}
		return p
	}

	if m := yearRegex.FindStringSubmatch(trimmed); m != nil {
		year, _ := strconv.Atoi(m[1])
		if iso, ok := buildISO(year, time.January, 1); ok {
			p.ISO = iso
			p.Approximate = strings.HasPrefix(trimmed, "~")
		}
		return p
	}

	if m := writtenRegex.FindStringSubmatch(strings.ToLower(trimmed)); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if month, ok := months[m[2]]; ok {
			if iso, ok := buildISO(year, month, day); ok {
				p.ISO = iso
			}
		}
		return p
	}

	return p
}

// buildISO validates the components and formats them as YYYY-MM-DD.
func buildISO(year int, month time.Month, day int) (string, bool) {
	if year < 1 || year > 9999 {
		return "", false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (32/01 becomes 01/02);
	// reject those instead of silently shifting the date.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// Year returns the year of an ISO date, or 0 if the string is not one.
func Year(iso string) int {
	if !isoRegex.MatchString(iso) {
		return 0
	}
	y, err := strconv.Atoi(iso[:4])
	if err != nil {
		return 0
	}
	return y
}

// IsISO reports whether s is a valid YYYY-MM-DD date.
func IsISO(s string) bool {
	if !isoRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// FormatISO renders an ISO date back to the DD/MM/YYYY form used by the
// rendered site.
func FormatISO(iso string) (string, error) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("invalid date: %q", iso)
	}
	return t.Format("02/01/2006"), nil
}
