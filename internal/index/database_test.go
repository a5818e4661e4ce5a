package index

import (
	"errors"
	"testing"
	"time"

	"github.com/pvmonteiro/tronco/internal/model"
)

func testDocument(t *testing.T) *model.Document {
	t.Helper()
	c := model.NewCollection()

	joao := &model.Member{
		ID: "1", Name: "JOÃO DA SILVA", LegalName: "JOÃO DA SILVA",
		Generation: 0, Gender: model.GenderMale, PhotoKey: "joao-da-silva",
	}
	joao.VitalInfo.Birth.Date = "1890-01-01"
	joao.VitalInfo.Death.Date = "1960-01-01"
	joao.Parents = model.Parents{Father: "ANTÔNIO", Mother: "BENEDITA"}

	maria := &model.Member{
		ID: "1.2", Name: "MARIA DA SILVA", LegalName: "MARIA PEREIRA DA SILVA",
		Generation: 1, Gender: model.GenderFemale,
	}
	maria.VitalInfo.Birth.Date = "1920-03-15"

	bare := &model.Member{
		ID: "1.3", Name: "PEDRO DA SILVA", LegalName: "PEDRO DA SILVA",
		Generation: 1, Gender: model.GenderMale,
	}

	for _, m := range []*model.Member{joao, maria, bare} {
		if err := c.Add(m); err != nil {
			t.Fatal(err)
		}
	}
	return model.NewDocument(c, "2.0", "arvore.html", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
}

func openRebuilt(t *testing.T) *Database {
	t.Helper()
	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })
	if err := d.Rebuild(testDocument(t)); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestGet(t *testing.T) {
	d := openRebuilt(t)

	m, err := d.Get("1.2")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "MARIA DA SILVA" || m.LegalName != "MARIA PEREIRA DA SILVA" {
		t.Errorf("member = %+v", m)
	}

	if _, err := d.Get("9"); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestQueryFilters(t *testing.T) {
	d := openRebuilt(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{Generation: AnyGeneration}, []string{"1", "1.2", "1.3"}},
		{"by name", Filter{Name: "maria", Generation: AnyGeneration}, []string{"1.2"}},
		{"by legal name", Filter{Name: "pereira", Generation: AnyGeneration}, []string{"1.2"}},
		{"by generation", Filter{Generation: 1}, []string{"1.2", "1.3"}},
		{"missing vitals", Filter{Generation: AnyGeneration, MissingVitals: true}, []string{"1.3"}},
		{"missing parents", Filter{Generation: AnyGeneration, MissingParents: true}, []string{"1.2", "1.3"}},
		{"no match", Filter{Name: "zzz", Generation: AnyGeneration}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := d.Query(tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			var ids []string
			for _, r := range rows {
				ids = append(ids, r.ID)
			}
			if len(ids) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", ids, tt.want)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Fatalf("ids = %v, want %v", ids, tt.want)
				}
			}
		})
	}
}

func TestQueryRowYears(t *testing.T) {
	d := openRebuilt(t)

	rows, err := d.Query(Filter{Generation: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].BirthYear != 1890 || rows[0].DeathYear != 1960 {
		t.Errorf("years = %d/%d", rows[0].BirthYear, rows[0].DeathYear)
	}
}

func TestStats(t *testing.T) {
	d := openRebuilt(t)

	s, err := d.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalMembers != 3 || s.WithVitals != 2 || s.WithParents != 1 {
		t.Errorf("stats = %+v", s)
	}
	if len(s.Generations) != 2 || s.Generations[0].Members != 1 || s.Generations[1].Members != 2 {
		t.Errorf("generations = %+v", s.Generations)
	}
	if s.ByGender["male"] != 2 || s.ByGender["female"] != 1 {
		t.Errorf("byGender = %v", s.ByGender)
	}
	if s.Version != "2.0" || s.Source != "arvore.html" {
		t.Errorf("meta = %+v", s)
	}
}

func TestRebuildReplaces(t *testing.T) {
	d := openRebuilt(t)

	c := model.NewCollection()
	only := &model.Member{ID: "1", Name: "SÓ UM", LegalName: "SÓ UM", Gender: model.GenderMale}
	if err := c.Add(only); err != nil {
		t.Fatal(err)
	}
	doc := model.NewDocument(c, "2.1", "novo.html", time.Now())

	if err := d.Rebuild(doc); err != nil {
		t.Fatal(err)
	}

	s, err := d.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalMembers != 1 || s.Version != "2.1" {
		t.Errorf("stats after rebuild = %+v", s)
	}
}
