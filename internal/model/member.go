// Package model defines the member record structures serialized to the
// site's data file.
package model

// Gender is the inferred gender of a member.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// IsKnown reports whether g is one of the two concrete values.
func (g Gender) IsKnown() bool {
	return g == GenderMale || g == GenderFemale
}

// Member is one person in the tree.
//
// Records are created once per migration run, mutated exactly once by the
// relationship builder to fill Relationships and union children, then
// treated as immutable. The rendered site reads the serialized form as-is.
type Member struct {
	// ID is the dotted hierarchical identifier ("1.2.3"), unique across
	// the collection. It encodes the lineage path from the root ancestor.
	ID string `json:"id"`

	// Name is the birth/display name as printed in the source.
	Name string `json:"name"`

	// LegalName is the name adopted after marriage when a name-change
	// clause was found; otherwise it equals Name.
	LegalName string `json:"legalName"`

	// NameChanges records the provenance of legal-name mutations.
	NameChanges []NameChange `json:"nameChanges,omitempty"`

	// Generation is the zero-based generation depth, derived from the ID
	// and never assigned independently.
	Generation int `json:"generation"`

	Gender Gender `json:"gender"`

	VitalInfo VitalInfo `json:"vitalInfo"`

	// Parents holds names only, not record references: the source may
	// name ancestors who have no record of their own.
	Parents Parents `json:"parents"`

	// Unions are the member's marriages in source order.
	Unions []Union `json:"unions,omitempty"`

	// Observations are free-text notes that matched no structured
	// pattern, in source order.
	Observations []string `json:"observations,omitempty"`

	Relationships Relationships `json:"relationships"`

	// PhotoKey is the normalized name key used by the site's photo
	// lookup. Filled by enrichment.
	PhotoKey string `json:"photoKey,omitempty"`
}

// NameChange documents one legal-name mutation.
type NameChange struct {
	Date   string `json:"date,omitempty"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
	Spouse string `json:"spouse,omitempty"`
}

// VitalInfo groups birth and death facts.
type VitalInfo struct {
	Birth Event      `json:"birth"`
	Death DeathEvent `json:"death"`
}

// Event is a dated, located life event.
type Event struct {
	// Date is the best-effort ISO value; empty when the source phrase
	// could not be parsed.
	Date string `json:"date,omitempty"`

	// FormattedDate preserves the source phrase for display.
	FormattedDate string `json:"formattedDate,omitempty"`

	Location string `json:"location,omitempty"`
}

// DeathEvent extends Event with the age at death when the source states it.
type DeathEvent struct {
	Event
	Age int `json:"age,omitempty"`
}

// IsEmpty reports whether the event carries any information at all.
func (e Event) IsEmpty() bool {
	return e.Date == "" && e.FormattedDate == "" && e.Location == ""
}

// Parents names a member's father and mother.
type Parents struct {
	Father string `json:"father,omitempty"`
	Mother string `json:"mother,omitempty"`
}

// IsComplete reports whether both parents are known.
func (p Parents) IsComplete() bool {
	return p.Father != "" && p.Mother != ""
}

// Union is one marriage and its offspring.
type Union struct {
	// UnionNumber is 1-based and per-person.
	UnionNumber int        `json:"unionNumber"`
	Spouse      Spouse     `json:"spouse"`
	Marriage    Event      `json:"marriage"`
	Children    []ChildRef `json:"children,omitempty"`
}

// Spouse is the partner in a union. Spouses frequently have no record of
// their own, so vital info and parents are embedded rather than referenced.
type Spouse struct {
	Name      string    `json:"name"`
	LegalName string    `json:"legalName,omitempty"`
	VitalInfo VitalInfo `json:"vitalInfo"`
	Parents   Parents   `json:"parents"`
}

// ChildRef points at a child member. Children are recorded here, on the
// parent's union, and nowhere else; this is the authoritative direction.
type ChildRef struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	BirthYear int    `json:"birthYear,omitempty"`
}

// Relationships holds the derived relations computed after assembly.
type Relationships struct {
	// Siblings lists member IDs sharing the same immediate parent prefix
	// and depth, excluding the member itself.
	Siblings []string `json:"siblings"`

	// Ancestors lists ancestor IDs from the root down. Populated only
	// when the run enables it.
	Ancestors []string `json:"ancestors,omitempty"`
}
