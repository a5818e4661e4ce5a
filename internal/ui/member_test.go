package ui

import (
	"strings"
	"testing"

	"github.com/pvmonteiro/tronco/internal/model"
)

func TestFormatMember(t *testing.T) {
	m := &model.Member{
		ID: "1.2", Name: "MARIA DA SILVA", LegalName: "MARIA PEREIRA DA SILVA",
		Generation: 1, Gender: model.GenderFemale,
	}
	m.VitalInfo.Birth = model.Event{FormattedDate: "15/03/1920", Location: "São Paulo"}
	m.VitalInfo.Death = model.DeathEvent{
		Event: model.Event{FormattedDate: "1990", Location: "Santos"},
		Age:   70,
	}
	m.Unions = []model.Union{{
		UnionNumber: 1,
		Spouse:      model.Spouse{Name: "CARLOS PEREIRA"},
		Marriage:    model.Event{FormattedDate: "1940"},
		Children:    []model.ChildRef{{ID: "1.2.1"}},
	}}
	m.Relationships.Siblings = []string{"1.1"}
	m.Observations = []string{"Foi professora."}

	out := FormatMember(m)

	for _, want := range []string{
		"MARIA DA SILVA",
		"signs as MARIA PEREIRA DA SILVA",
		"generation 1, female",
		"born 15/03/1920 in São Paulo",
		"died 1990 in Santos (aged 70)",
		"union 1: CARLOS PEREIRA, married 1940",
		"children: 1.2.1",
		"siblings: 1.1",
		"Foi professora.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatEventLocationOnly(t *testing.T) {
	got := formatEvent(model.Event{Location: "Lisboa"})
	if got != "in Lisboa" {
		t.Errorf("formatEvent = %q", got)
	}
}

func TestTableRender(t *testing.T) {
	tbl := &Table{
		Headers: []string{"ID", "NAME"},
		Rows: [][]string{
			{"1", "JOÃO DA SILVA"},
			{"1.2", "MARIA"},
		},
	}
	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "1    JOÃO DA SILVA") {
		t.Errorf("row not aligned: %q", lines[1])
	}
}
