package relate

import (
	"reflect"
	"testing"

	"github.com/pvmonteiro/tronco/internal/model"
)

func buildCollection(t *testing.T, ids ...string) *model.Collection {
	t.Helper()
	c := model.NewCollection()
	for _, id := range ids {
		m := &model.Member{ID: id, Name: "PESSOA " + id, Gender: model.GenderMale}
		if err := c.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestSiblings(t *testing.T) {
	c := buildCollection(t, "1", "1.2", "1.2.1", "1.2.2", "1.2.3.1", "1.3")
	Build(c, Options{})

	tests := []struct {
		id   string
		want []string
	}{
		{"1.2.1", []string{"1.2.2"}},
		{"1.2.2", []string{"1.2.1"}},
		{"1.2", []string{"1.3"}},
		{"1.3", []string{"1.2"}},
		{"1", []string{}},
		{"1.2.3.1", []string{}},
	}

	for _, tt := range tests {
		m, ok := c.Get(tt.id)
		if !ok {
			t.Fatalf("member %s missing", tt.id)
		}
		if !reflect.DeepEqual(m.Relationships.Siblings, tt.want) {
			t.Errorf("%s siblings = %v, want %v", tt.id, m.Relationships.Siblings, tt.want)
		}
	}
}

func TestSiblingSymmetryAndIrreflexivity(t *testing.T) {
	c := buildCollection(t, "1", "1.1", "1.2", "1.3", "1.2.1", "1.2.2")
	Build(c, Options{})

	for _, m := range c.Members() {
		for _, sid := range m.Relationships.Siblings {
			if sid == m.ID {
				t.Errorf("%s lists itself as sibling", m.ID)
			}
			sib, ok := c.Get(sid)
			if !ok {
				t.Fatalf("sibling %s of %s missing", sid, m.ID)
			}
			if !contains(sib.Relationships.Siblings, m.ID) {
				t.Errorf("sibling relation not symmetric: %s lists %s but not vice versa", m.ID, sid)
			}
		}
	}
}

func TestIdempotence(t *testing.T) {
	c := buildCollection(t, "1", "1.1", "1.2", "1.2.1", "1.2.2")
	Build(c, Options{Ancestors: true})

	snapshot := make(map[string]model.Relationships)
	unionCounts := make(map[string]int)
	for _, m := range c.Members() {
		snapshot[m.ID] = m.Relationships
		for _, u := range m.Unions {
			unionCounts[m.ID] += len(u.Children)
		}
	}

	Build(c, Options{Ancestors: true})

	for _, m := range c.Members() {
		if !reflect.DeepEqual(snapshot[m.ID], m.Relationships) {
			t.Errorf("second run changed relationships of %s", m.ID)
		}
		got := 0
		for _, u := range m.Unions {
			got += len(u.Children)
		}
		if got != unionCounts[m.ID] {
			t.Errorf("second run changed child count of %s: %d -> %d", m.ID, unionCounts[m.ID], got)
		}
	}
}

func TestAncestors(t *testing.T) {
	c := buildCollection(t, "1", "1.2", "1.2.1")
	Build(c, Options{Ancestors: true})

	m, _ := c.Get("1.2.1")
	want := []string{"1", "1.2"}
	if !reflect.DeepEqual(m.Relationships.Ancestors, want) {
		t.Errorf("ancestors = %v, want %v", m.Relationships.Ancestors, want)
	}

	Build(c, Options{})
	if m.Relationships.Ancestors != nil {
		t.Error("ancestors should be cleared when disabled")
	}
}

func TestChildrenAttachedToImplicitUnion(t *testing.T) {
	c := buildCollection(t, "1", "1.1", "1.1.1", "1.1.2")
	child, _ := c.Get("1.1.1")
	child.VitalInfo.Birth.Date = "1942-05-01"

	Build(c, Options{})

	parent, _ := c.Get("1.1")
	if len(parent.Unions) != 1 {
		t.Fatalf("expected implicit union, got %d unions", len(parent.Unions))
	}
	refs := parent.Unions[0].Children
	if len(refs) != 2 {
		t.Fatalf("got %d children, want 2", len(refs))
	}
	if refs[0].ID != "1.1.1" || refs[0].Name != "PESSOA 1.1.1" || refs[0].BirthYear != 1942 {
		t.Errorf("child ref = %+v", refs[0])
	}
	if refs[1].ID != "1.1.2" || refs[1].BirthYear != 0 {
		t.Errorf("child ref = %+v", refs[1])
	}
}

func TestTextualClaimsKeepTheirUnion(t *testing.T) {
	c := buildCollection(t, "1", "1.1", "1.1.1", "1.1.2")
	parent, _ := c.Get("1.1")
	parent.Unions = []model.Union{
		{UnionNumber: 1, Spouse: model.Spouse{Name: "PRIMEIRA"}},
		{UnionNumber: 2, Spouse: model.Spouse{Name: "SEGUNDA"},
			Children: []model.ChildRef{{ID: "1.1.2"}}},
	}

	Build(c, Options{})

	// 1.1.2 was claimed by union 2 and stays there; 1.1.1 is unclaimed
	// and lands on union 1.
	if len(parent.Unions[1].Children) != 1 || parent.Unions[1].Children[0].ID != "1.1.2" {
		t.Errorf("union 2 children = %+v", parent.Unions[1].Children)
	}
	if parent.Unions[1].Children[0].Name != "PESSOA 1.1.2" {
		t.Error("claimed ref should be filled with the child's name")
	}
	if len(parent.Unions[0].Children) != 1 || parent.Unions[0].Children[0].ID != "1.1.1" {
		t.Errorf("union 1 children = %+v", parent.Unions[0].Children)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
