package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/pvmonteiro/tronco/internal/memberid"
)

// Collection accumulates member records and keeps an index by ID.
type Collection struct {
	members []*Member
	byID    map[string]*Member
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byID: make(map[string]*Member)}
}

// Add appends a member. Duplicate IDs are rejected; the segmenter already
// dedupes sections, so a collision here indicates a bug upstream.
func (c *Collection) Add(m *Member) error {
	if _, exists := c.byID[m.ID]; exists {
		return fmt.Errorf("duplicate member id %q", m.ID)
	}
	c.members = append(c.members, m)
	c.byID[m.ID] = m
	return nil
}

// Get returns the member with the given ID.
func (c *Collection) Get(id string) (*Member, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Len returns the number of members.
func (c *Collection) Len() int {
	return len(c.members)
}

// Members returns the records in insertion order. Callers must not add or
// remove entries; the slice is shared.
func (c *Collection) Members() []*Member {
	return c.members
}

// SortByID orders members by their numeric ID segments, parents before
// children.
func (c *Collection) SortByID() {
	sort.Slice(c.members, func(i, j int) bool {
		return memberid.Less(memberid.ID(c.members[i].ID), memberid.ID(c.members[j].ID))
	})
}

// MaxGeneration returns the highest generation present, or -1 when empty.
func (c *Collection) MaxGeneration() int {
	max := -1
	for _, m := range c.members {
		if m.Generation > max {
			max = m.Generation
		}
	}
	return max
}

// Metadata is the envelope header of the serialized data file.
type Metadata struct {
	Version      string `json:"version"`
	LastUpdated  string `json:"lastUpdated"`
	TotalMembers int    `json:"totalMembers"`
	Generations  int    `json:"generations"`
	Source       string `json:"source,omitempty"`
}

// Document is the full serialized shape consumed by the site.
type Document struct {
	Metadata      Metadata  `json:"metadata"`
	FamilyMembers []*Member `json:"familyMembers"`
}

// NewDocument wraps a collection with computed metadata.
func NewDocument(c *Collection, version, source string, now time.Time) *Document {
	return &Document{
		Metadata: Metadata{
			Version:      version,
			LastUpdated:  now.UTC().Format(time.RFC3339),
			TotalMembers: c.Len(),
			Generations:  c.MaxGeneration() + 1,
			Source:       source,
		},
		FamilyMembers: c.Members(),
	}
}

// Collection rebuilds the indexed collection from a deserialized document.
func (d *Document) Collection() (*Collection, error) {
	c := NewCollection()
	for _, m := range d.FamilyMembers {
		if err := c.Add(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}
