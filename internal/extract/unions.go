package extract

import (
	"regexp"
	"strings"

	"github.com/pvmonteiro/tronco/internal/dates"
	"github.com/pvmonteiro/tronco/internal/memberid"
	"github.com/pvmonteiro/tronco/internal/model"
)

// unionRegex matches one marriage clause:
//
//	"Casou-se em 1912, em Lisboa, com ANA PEREIRA"
//
// Group 1 is the optional date phrase, group 2 the optional location and
// group 3 the spouse's uppercase name run. Spouse details (birth,
// filiation) follow in the same sentence and are parsed separately.
var unionRegex = regexp.MustCompile(
	`[Cc]asou-se(?:\s+em\s+(` + datePhrase + `))?(?:,?\s+em\s+([^,.;\n]+?),?)?\s+com\s+([\p{Lu}][\p{Lu} '’\-]*)`)

// spouseFiliationRegex reads "filho de A e B" inside a union sentence.
var spouseFiliationRegex = regexp.MustCompile(
	`[Ff]ilh[oa]\s+de\s+([\p{Lu}][\p{Lu} '’\-]*?)\s+e\s+([\p{Lu}][\p{Lu} '’\-]*)`)

// childIDRegex finds dotted IDs listed in a section body ("Filhos: 1.2.1,
// 1.2.2").
var childIDRegex = regexp.MustCompile(`(\d+(?:\.\d+)*)\.?`)

// extractUnions finds every marriage clause in the section. A person may
// marry more than once; each occurrence becomes a union with the next
// 1-based number.
func extractUnions(text string, id memberid.ID) []model.Union {
	matches := unionRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var unions []model.Union
	for i, m := range matches {
		union := model.Union{UnionNumber: len(unions) + 1}

		if m[2] >= 0 {
			parsed := dates.Normalize(text[m[2]:m[3]])
			union.Marriage.Date = parsed.ISO
			union.Marriage.FormattedDate = parsed.Formatted
		}
		if m[4] >= 0 {
			union.Marriage.Location = plausibleLocation(text[m[4]:m[5]])
		}

		name := cleanName(text[m[6]:m[7]])
		if !isPlausibleName(name) {
			continue
		}
		union.Spouse.Name = name

		// Spouse details live in the rest of the marriage sentence.
		rest := sentenceRest(text, m[1])
		if birth, ok := matchEvent(birthPatterns[:2], rest); ok {
			union.Spouse.VitalInfo.Birth = birth
		}
		if fm := spouseFiliationRegex.FindStringSubmatch(rest); fm != nil {
			union.Spouse.Parents = assignByGender(cleanName(fm[1]), cleanName(fm[2]))
		}

		// Children listed textually under this union: IDs exactly one
		// level below the member's own.
		sliceEnd := len(text)
		if i+1 < len(matches) {
			sliceEnd = matches[i+1][0]
		}
		union.Children = childRefs(text[m[1]:sliceEnd], id)

		unions = append(unions, union)
	}

	return unions
}

// sentenceRest returns the text from offset to the end of the sentence.
func sentenceRest(text string, offset int) string {
	rest := text[offset:]
	if i := strings.IndexAny(rest, ".\n"); i >= 0 {
		// Do not cut inside a slash date or a dotted ID; extend past
		// periods flanked by digits.
		for i >= 0 && i+1 < len(rest) && isDigit(rest[i+1]) && i > 0 && isDigit(rest[i-1]) {
			next := strings.IndexAny(rest[i+1:], ".\n")
			if next < 0 {
				i = -1
				break
			}
			i = i + 1 + next
		}
		if i >= 0 {
			rest = rest[:i]
		}
	}
	return rest
}

// childRefs collects IDs one level below parent from a text slice.
func childRefs(slice string, parent memberid.ID) []model.ChildRef {
	var refs []model.ChildRef
	seen := make(map[memberid.ID]bool)
	for _, m := range childIDRegex.FindAllStringSubmatch(slice, -1) {
		id, err := memberid.Parse(m[1])
		if err != nil {
			continue
		}
		if !id.IsChildOf(parent) || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, model.ChildRef{ID: id.String()})
	}
	return refs
}

// assignByGender places two parent-name fragments into father/mother slots.
// Gendered name endings decide when they can; otherwise the source's
// conventional order (father first) applies.
func assignByGender(first, second string) model.Parents {
	g1, ok1 := nameGender(first)
	g2, ok2 := nameGender(second)

	if ok1 && g1 == model.GenderFemale && (!ok2 || g2 == model.GenderMale) {
		return model.Parents{Father: second, Mother: first}
	}
	if ok2 && g2 == model.GenderMale && !ok1 {
		return model.Parents{Father: second, Mother: first}
	}
	return model.Parents{Father: first, Mother: second}
}

// plausibleLocation drops captures that are clearly not places; the union
// pattern's location slot sometimes swallows prose like "segundas núpcias".
func plausibleLocation(raw string) string {
	loc := cleanLocation(raw)
	if loc == "" {
		return ""
	}
	r := []rune(loc)
	if r[0] >= 'a' && r[0] <= 'z' || strings.ContainsRune("áéíóúãõâêôç", r[0]) {
		return ""
	}
	return loc
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
