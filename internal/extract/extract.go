// Package extract turns segmented source sections into member records.
//
// Each field has its own extractor: a pure function over the section text
// plus, for parent resolution, read-only lookups into sibling sections.
// Extractors are total: malformed input yields a safe zero value and a
// diagnostic, never a panic, so one bad record cannot abort the run.
//
// Every pattern list is ordered from strict to permissive and the first
// match wins.
package extract

import (
	"fmt"

	"github.com/pvmonteiro/tronco/internal/memberid"
	"github.com/pvmonteiro/tronco/internal/model"
	"github.com/pvmonteiro/tronco/internal/segment"
)

// GenderPolicy names the fallback applied when a section carries no gender
// signal at all. The printed source leans on "default-male"; keeping it a
// policy makes the data-quality assumption explicit instead of hardcoded.
type GenderPolicy string

const (
	GenderPolicyDefaultMale GenderPolicy = "default-male"
	GenderPolicyUnknown     GenderPolicy = "unknown"
)

// ParseGenderPolicy validates a policy name from config or flags.
func ParseGenderPolicy(s string) (GenderPolicy, error) {
	switch GenderPolicy(s) {
	case GenderPolicyDefaultMale, GenderPolicyUnknown:
		return GenderPolicy(s), nil
	case "":
		return GenderPolicyDefaultMale, nil
	}
	return "", fmt.Errorf("unknown gender policy %q (use %q or %q)",
		s, GenderPolicyDefaultMale, GenderPolicyUnknown)
}

// Config controls extraction behavior.
type Config struct {
	GenderPolicy GenderPolicy

	// MaxObservationLength bounds free-text observations, in runes.
	// Zero means DefaultMaxObservationLength.
	MaxObservationLength int
}

// DefaultMaxObservationLength caps observation sentences. Longer fragments
// are usually page-break artifacts, not notes.
const DefaultMaxObservationLength = 300

// Diagnostic records a non-fatal extraction problem.
type Diagnostic struct {
	ID      string `json:"id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Extractor runs all field extractors over sections. The lookup is built
// once, before extraction starts, and is never mutated.
type Extractor struct {
	cfg    Config
	lookup *segment.Lookup
	diags  []Diagnostic
}

// New creates an extractor over the given cross-section lookup.
func New(cfg Config, lookup *segment.Lookup) *Extractor {
	if cfg.GenderPolicy == "" {
		cfg.GenderPolicy = GenderPolicyDefaultMale
	}
	if cfg.MaxObservationLength <= 0 {
		cfg.MaxObservationLength = DefaultMaxObservationLength
	}
	return &Extractor{cfg: cfg, lookup: lookup}
}

// Diagnostics returns everything logged so far, in order.
func (e *Extractor) Diagnostics() []Diagnostic {
	return e.diags
}

func (e *Extractor) diag(id memberid.ID, field, format string, args ...interface{}) {
	e.diags = append(e.diags, Diagnostic{
		ID:      id.String(),
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Member assembles one record from a section. It returns false when the
// section has no extractable name, in which case the caller discards it.
func (e *Extractor) Member(sec segment.Section) (*model.Member, bool) {
	ident, ok := parseIdentity(sec.Text)
	if !ok {
		e.diag(sec.ID, "name", "no name content after id, section discarded")
		return nil, false
	}

	m := &model.Member{
		ID:         ident.ID.String(),
		Name:       ident.Name,
		LegalName:  ident.Name,
		Generation: ident.ID.Generation(),
	}

	m.Gender = e.gender(sec, ident.Name)
	m.VitalInfo = e.vitalInfo(sec)
	m.Unions = e.unions(sec)
	e.applyNameChange(sec, m)
	m.Parents = e.parents(sec)
	m.Observations = e.observations(sec)

	return m, true
}

func (e *Extractor) gender(sec segment.Section, name string) model.Gender {
	// Union sentences carry the spouse's participles; only the member's
	// own prose may vote.
	g, signal := inferGender(stripUnionSentences(sec.Text), name, e.cfg.GenderPolicy)
	if signal == genderSignalNone && e.cfg.GenderPolicy == GenderPolicyDefaultMale {
		e.diag(sec.ID, "gender", "no gender signal, defaulted to male by policy")
	}
	return g
}

func (e *Extractor) vitalInfo(sec segment.Section) model.VitalInfo {
	vi, notes := extractVitalInfo(sec.Text)
	for _, n := range notes {
		e.diag(sec.ID, "vitalInfo", "%s", n)
	}
	return vi
}

func (e *Extractor) unions(sec segment.Section) []model.Union {
	unions := extractUnions(sec.Text, sec.ID)
	if len(unions) == 0 {
		return nil
	}
	return unions
}

// applyNameChange fills LegalName and NameChanges from a signing clause.
//
// The pronoun decides whose name changed: "Ela passou a assinar" in a male
// member's section refers to his wife, so the change lands on the spouse
// instead. Spouse and marriage date come from the first union when present.
func (e *Extractor) applyNameChange(sec segment.Section, m *model.Member) {
	clause, ok := extractSigning(sec.Text)
	if !ok {
		return
	}

	clauseGender := model.GenderMale
	if clause.Pronoun == "Ela" {
		clauseGender = model.GenderFemale
	}
	if m.Gender.IsKnown() && clauseGender != m.Gender {
		if len(m.Unions) > 0 {
			m.Unions[0].Spouse.LegalName = clause.Name
		} else {
			e.diag(sec.ID, "legalName", "signing clause for spouse but no union found")
		}
		return
	}

	change := model.NameChange{
		From:   m.Name,
		To:     clause.Name,
		Reason: "marriage",
	}
	if len(m.Unions) > 0 {
		change.Spouse = m.Unions[0].Spouse.Name
		change.Date = m.Unions[0].Marriage.Date
		if change.Date == "" {
			change.Date = m.Unions[0].Marriage.FormattedDate
		}
	}

	m.LegalName = clause.Name
	m.NameChanges = append(m.NameChanges, change)
}

func (e *Extractor) observations(sec segment.Section) []string {
	return extractObservations(sec.Text, e.cfg.MaxObservationLength)
}
