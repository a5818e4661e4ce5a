// Package relate derives the implicit relationships encoded in the ID
// hierarchy once all records exist.
//
// This is the only stage that mutates assembled records, and it does so in
// a single deterministic pass: every derived field is recomputed from
// scratch, so running Build twice yields the same result.
package relate

import (
	"sort"

	"github.com/pvmonteiro/tronco/internal/dates"
	"github.com/pvmonteiro/tronco/internal/memberid"
	"github.com/pvmonteiro/tronco/internal/model"
)

// Options controls which derived relations are populated.
type Options struct {
	// Ancestors fills relationships.ancestors from the ID path. Off by
	// default; the rendered site derives ancestry from the ID itself.
	Ancestors bool
}

// Build computes siblings, union children and (optionally) ancestors for
// every member in the collection.
func Build(c *model.Collection, opts Options) {
	byParent := groupByParent(c)

	for _, m := range c.Members() {
		m.Relationships.Siblings = siblingsOf(m, byParent)
		if opts.Ancestors {
			m.Relationships.Ancestors = ancestorsOf(m)
		} else {
			m.Relationships.Ancestors = nil
		}
		attachChildren(m, byParent, c)
	}
}

// groupByParent indexes member IDs by their immediate parent prefix.
// Grouping first keeps the sibling pass linear instead of quadratic.
func groupByParent(c *model.Collection) map[memberid.ID][]memberid.ID {
	groups := make(map[memberid.ID][]memberid.ID)
	for _, m := range c.Members() {
		id := memberid.ID(m.ID)
		parent, ok := id.Parent()
		if !ok {
			continue
		}
		groups[parent] = append(groups[parent], id)
	}
	for _, ids := range groups {
		sort.Slice(ids, func(i, j int) bool { return memberid.Less(ids[i], ids[j]) })
	}
	return groups
}

func siblingsOf(m *model.Member, byParent map[memberid.ID][]memberid.ID) []string {
	id := memberid.ID(m.ID)
	parent, ok := id.Parent()
	if !ok {
		return []string{}
	}

	group := byParent[parent]
	siblings := make([]string, 0, len(group)-1)
	for _, other := range group {
		if other != id {
			siblings = append(siblings, other.String())
		}
	}
	return siblings
}

func ancestorsOf(m *model.Member) []string {
	ancestors := memberid.ID(m.ID).Ancestors()
	out := make([]string, len(ancestors))
	for i, a := range ancestors {
		out[i] = a.String()
	}
	return out
}

// attachChildren reconciles a member's union children against the
// collection. Textually claimed IDs keep their union; children present in
// the collection but claimed nowhere are attached to the first union. A
// member with children but no marriage clause gets an implicit union so
// the children are not lost.
func attachChildren(m *model.Member, byParent map[memberid.ID][]memberid.ID, c *model.Collection) {
	children := byParent[memberid.ID(m.ID)]

	// Normalize existing refs: dedupe, drop IDs with no record and no
	// textual basis is kept as-is (the source may list children whose
	// sections were lost; names stay empty then).
	claimed := make(map[string]bool)
	for ui := range m.Unions {
		seen := make(map[string]bool)
		kept := m.Unions[ui].Children[:0]
		for _, ref := range m.Unions[ui].Children {
			if seen[ref.ID] {
				continue
			}
			seen[ref.ID] = true
			claimed[ref.ID] = true
			kept = append(kept, fillChildRef(ref, c))
		}
		m.Unions[ui].Children = kept
	}

	var unclaimed []model.ChildRef
	for _, childID := range children {
		if claimed[childID.String()] {
			continue
		}
		unclaimed = append(unclaimed, fillChildRef(model.ChildRef{ID: childID.String()}, c))
	}
	if len(unclaimed) == 0 {
		return
	}

	if len(m.Unions) == 0 {
		m.Unions = []model.Union{{UnionNumber: 1}}
	}
	m.Unions[0].Children = append(m.Unions[0].Children, unclaimed...)
}

func fillChildRef(ref model.ChildRef, c *model.Collection) model.ChildRef {
	child, ok := c.Get(ref.ID)
	if !ok {
		return ref
	}
	ref.Name = child.Name
	if y := dates.Year(child.VitalInfo.Birth.Date); y > 0 {
		ref.BirthYear = y
	}
	return ref
}
