package ui

import (
	"fmt"
	"strings"

	"github.com/pvmonteiro/tronco/internal/model"
)

// FormatMember renders one member record for terminal display.
func FormatMember(m *model.Member) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", AccentBold.Render(m.ID), Bold.Render(m.Name))
	if m.LegalName != "" && m.LegalName != m.Name {
		fmt.Fprintf(&b, "  signs as %s\n", m.LegalName)
	}
	fmt.Fprintf(&b, "  %s generation %d, %s\n", Hint("·"), m.Generation, m.Gender)

	if !m.VitalInfo.Birth.IsEmpty() {
		fmt.Fprintf(&b, "  born %s\n", formatEvent(m.VitalInfo.Birth))
	}
	if !m.VitalInfo.Death.IsEmpty() {
		line := formatEvent(m.VitalInfo.Death.Event)
		if m.VitalInfo.Death.Age > 0 {
			line += fmt.Sprintf(" (aged %d)", m.VitalInfo.Death.Age)
		}
		fmt.Fprintf(&b, "  died %s\n", line)
	}

	if m.Parents.Father != "" || m.Parents.Mother != "" {
		fmt.Fprintf(&b, "  parents: %s\n", formatParents(m.Parents))
	}

	for _, u := range m.Unions {
		fmt.Fprintf(&b, "  union %d: %s", u.UnionNumber, u.Spouse.Name)
		if u.Spouse.LegalName != "" && u.Spouse.LegalName != u.Spouse.Name {
			fmt.Fprintf(&b, " (signs as %s)", u.Spouse.LegalName)
		}
		if !u.Marriage.IsEmpty() {
			fmt.Fprintf(&b, ", married %s", formatEvent(u.Marriage))
		}
		b.WriteString("\n")
		if len(u.Children) > 0 {
			ids := make([]string, len(u.Children))
			for i, c := range u.Children {
				ids[i] = MemberID(c.ID)
			}
			fmt.Fprintf(&b, "    children: %s\n", strings.Join(ids, ", "))
		}
	}

	if len(m.Relationships.Siblings) > 0 {
		ids := make([]string, len(m.Relationships.Siblings))
		for i, s := range m.Relationships.Siblings {
			ids[i] = MemberID(s)
		}
		fmt.Fprintf(&b, "  siblings: %s\n", strings.Join(ids, ", "))
	}

	for _, obs := range m.Observations {
		fmt.Fprintf(&b, "  %s\n", Hint(obs))
	}

	return b.String()
}

func formatEvent(e model.Event) string {
	date := e.FormattedDate
	if date == "" {
		date = e.Date
	}
	switch {
	case date != "" && e.Location != "":
		return fmt.Sprintf("%s in %s", date, e.Location)
	case date != "":
		return date
	default:
		return "in " + e.Location
	}
}

func formatParents(p model.Parents) string {
	switch {
	case p.Father != "" && p.Mother != "":
		return p.Father + " and " + p.Mother
	case p.Father != "":
		return p.Father
	default:
		return p.Mother
	}
}
