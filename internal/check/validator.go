// Package check validates an assembled member collection.
//
// Validation runs after the relationship build and never halts the
// pipeline: problems are accumulated into a report the orchestrator
// surfaces to the operator. Errors mark data that would break the rendered
// site; warnings mark gaps worth fixing but safe to ship.
package check

import (
	"fmt"
	"strings"

	"github.com/pvmonteiro/tronco/internal/memberid"
	"github.com/pvmonteiro/tronco/internal/model"
)

// IssueLevel indicates the severity of an issue.
type IssueLevel int

const (
	LevelError IssueLevel = iota
	LevelWarning
)

func (l IssueLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a validation finding on one member.
type Issue struct {
	Level    IssueLevel `json:"-"`
	MemberID string     `json:"memberId"`
	Field    string     `json:"field,omitempty"`
	Message  string     `json:"message"`
}

// Report is the validator's output.
type Report struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`

	TotalMembers int `json:"totalMembers"`

	// ValidMembers counts members with no errors and at least one vital
	// date; Completeness is their share as a percentage.
	ValidMembers int     `json:"validMembers"`
	Completeness float64 `json:"completenessPercentage"`
}

// IsValid reports whether the collection has no hard errors.
func (r *Report) IsValid() bool {
	return len(r.Errors) == 0
}

// notRegistered is the source's placeholder for missing dates; it counts
// as absent for completeness scoring.
const notRegistered = "não registrado"

// Validate re-walks the assembled collection and produces a report.
func Validate(c *model.Collection) *Report {
	r := &Report{TotalMembers: c.Len()}

	for _, m := range c.Members() {
		errsBefore := len(r.Errors)

		r.validateRequired(m)
		r.validateID(m)
		r.validateReferences(m, c)
		r.validateSubObjects(m)

		if len(r.Errors) == errsBefore && hasVitalDate(m) {
			r.ValidMembers++
		}
	}

	if r.TotalMembers > 0 {
		r.Completeness = float64(r.ValidMembers) / float64(r.TotalMembers) * 100
	}

	return r
}

func (r *Report) error(m *model.Member, field, format string, args ...interface{}) {
	r.Errors = append(r.Errors, Issue{
		Level:    LevelError,
		MemberID: m.ID,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) warn(m *model.Member, field, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Issue{
		Level:    LevelWarning,
		MemberID: m.ID,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) validateRequired(m *model.Member) {
	if m.ID == "" {
		r.error(m, "id", "missing id")
	}
	if strings.TrimSpace(m.Name) == "" {
		r.error(m, "name", "missing name")
	}
	if !m.Gender.IsKnown() {
		r.error(m, "gender", "gender is %q, must be male or female", m.Gender)
	}
	if m.Generation < 0 {
		r.error(m, "generation", "negative generation %d", m.Generation)
	}
}

func (r *Report) validateID(m *model.Member) {
	if m.ID == "" {
		return
	}
	id, err := memberid.Parse(m.ID)
	if err != nil {
		r.error(m, "id", "malformed id %q", m.ID)
		return
	}
	// Generation is a pure function of the ID; a mismatch means it was
	// assigned independently somewhere.
	if m.Generation != id.Generation() {
		r.error(m, "generation", "generation %d does not match id depth (want %d)",
			m.Generation, id.Generation())
	}
}

func (r *Report) validateReferences(m *model.Member, c *model.Collection) {
	for _, sid := range m.Relationships.Siblings {
		if _, ok := c.Get(sid); !ok {
			r.warn(m, "siblings", "sibling %s has no record", sid)
		}
	}
	for _, aid := range m.Relationships.Ancestors {
		if _, ok := c.Get(aid); !ok {
			r.warn(m, "ancestors", "ancestor %s has no record", aid)
		}
	}
	for _, u := range m.Unions {
		for _, child := range u.Children {
			if _, ok := c.Get(child.ID); !ok {
				r.warn(m, "children", "child %s has no record", child.ID)
			}
		}
	}

	// Broken chain: a non-root member whose structural parent is absent.
	if id, err := memberid.Parse(m.ID); err == nil {
		if parent, ok := id.Parent(); ok {
			if _, found := c.Get(parent.String()); !found {
				r.warn(m, "parents", "structural parent %s has no record", parent)
			}
		}
	}
}

func (r *Report) validateSubObjects(m *model.Member) {
	if m.VitalInfo.Birth.IsEmpty() && m.VitalInfo.Death.IsEmpty() {
		r.warn(m, "vitalInfo", "no birth or death information")
	}
	if m.Parents.Father == "" && m.Parents.Mother == "" {
		r.warn(m, "parents", "no parent names")
	}
}

// hasVitalDate reports whether the member carries at least one usable
// birth or death date.
func hasVitalDate(m *model.Member) bool {
	for _, d := range []string{
		m.VitalInfo.Birth.Date,
		m.VitalInfo.Birth.FormattedDate,
		m.VitalInfo.Death.Date,
		m.VitalInfo.Death.FormattedDate,
	} {
		if d != "" && !strings.EqualFold(d, notRegistered) {
			return true
		}
	}
	return false
}
