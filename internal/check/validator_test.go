package check

import (
	"testing"

	"github.com/pvmonteiro/tronco/internal/model"
)

func validMember(id string, generation int) *model.Member {
	m := &model.Member{
		ID:         id,
		Name:       "PESSOA " + id,
		LegalName:  "PESSOA " + id,
		Generation: generation,
		Gender:     model.GenderFemale,
	}
	m.VitalInfo.Birth.Date = "1920-01-01"
	m.VitalInfo.Birth.FormattedDate = "1920"
	m.Parents = model.Parents{Father: "PAI", Mother: "MÃE"}
	m.Relationships.Siblings = []string{}
	return m
}

func collect(t *testing.T, members ...*model.Member) *model.Collection {
	t.Helper()
	c := model.NewCollection()
	for _, m := range members {
		if err := c.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestValidateCleanCollection(t *testing.T) {
	c := collect(t,
		validMember("1", 0),
		validMember("1.1", 1),
		validMember("1.2", 1),
	)

	r := Validate(c)

	if !r.IsValid() {
		t.Errorf("expected valid, got errors: %+v", r.Errors)
	}
	if r.Completeness != 100 {
		t.Errorf("Completeness = %v, want 100", r.Completeness)
	}
	if r.ValidMembers != 3 {
		t.Errorf("ValidMembers = %d, want 3", r.ValidMembers)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	m := validMember("1", 0)
	m.Name = "  "
	m.Gender = model.GenderUnknown
	c := collect(t, m)

	r := Validate(c)

	if r.IsValid() {
		t.Fatal("expected errors")
	}
	fields := map[string]bool{}
	for _, e := range r.Errors {
		fields[e.Field] = true
	}
	if !fields["name"] || !fields["gender"] {
		t.Errorf("expected name and gender errors, got %+v", r.Errors)
	}
}

func TestValidateGenerationMismatch(t *testing.T) {
	m := validMember("1.2.3", 1) // depth says generation 2
	c := collect(t, m)

	r := Validate(c)

	if r.IsValid() {
		t.Fatal("expected generation mismatch error")
	}
	if r.Errors[0].Field != "generation" {
		t.Errorf("error field = %q, want generation", r.Errors[0].Field)
	}
}

func TestValidateMalformedID(t *testing.T) {
	m := validMember("1..2", 1)
	c := collect(t, m)

	r := Validate(c)

	if r.IsValid() {
		t.Fatal("expected malformed id error")
	}
}

func TestDanglingReferencesAreWarnings(t *testing.T) {
	m := validMember("1", 0)
	m.Relationships.Siblings = []string{"1.9"}
	m.Relationships.Ancestors = []string{"7"}
	m.Unions = []model.Union{{UnionNumber: 1, Children: []model.ChildRef{{ID: "1.5"}}}}
	c := collect(t, m)

	r := Validate(c)

	if !r.IsValid() {
		t.Errorf("dangling references must not be errors: %+v", r.Errors)
	}
	if len(r.Warnings) < 3 {
		t.Errorf("expected warnings for sibling, ancestor and child, got %+v", r.Warnings)
	}
}

func TestBrokenChainWarns(t *testing.T) {
	// 1.2.1 exists but 1.2 does not.
	c := collect(t, validMember("1", 0), func() *model.Member {
		m := validMember("1.2.1", 2)
		return m
	}())

	r := Validate(c)

	if !r.IsValid() {
		t.Errorf("broken chain must not be an error: %+v", r.Errors)
	}
	found := false
	for _, w := range r.Warnings {
		if w.MemberID == "1.2.1" && w.Field == "parents" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected structural parent warning, got %+v", r.Warnings)
	}
}

func TestCompleteness(t *testing.T) {
	with := validMember("1", 0)
	without := validMember("1.1", 1)
	without.VitalInfo = model.VitalInfo{}
	c := collect(t, with, without)

	r := Validate(c)

	if r.Completeness != 50 {
		t.Errorf("Completeness = %v, want 50", r.Completeness)
	}
}

func TestNotRegisteredDateDoesNotCount(t *testing.T) {
	m := validMember("1", 0)
	m.VitalInfo.Birth = model.Event{FormattedDate: "não registrado"}
	m.VitalInfo.Death = model.DeathEvent{}
	c := collect(t, m)

	r := Validate(c)

	if r.ValidMembers != 0 {
		t.Errorf("ValidMembers = %d, want 0 (placeholder date)", r.ValidMembers)
	}
}

func TestValidateEmptyCollection(t *testing.T) {
	r := Validate(model.NewCollection())
	if !r.IsValid() || r.Completeness != 0 {
		t.Errorf("empty collection: %+v", r)
	}
}
