package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pvmonteiro/tronco/internal/dates"
	"github.com/pvmonteiro/tronco/internal/model"
)

// datePhrase is the alternation of every date form the source uses:
// "15/03/1920", "15 de março de 1920", "1920", "~1885".
const datePhrase = `\d{1,2}/\d{1,2}/\d{4}|\d{1,2}º?\s+de\s+[\p{L}]+\s+de\s+\d{4}|~?\d{4}`

// Birth and death patterns are ordered strict to permissive; the first
// match wins. Group 1 is the date phrase, group 2 the optional location.
var birthPatterns = []*regexp.Regexp{
	// "Nascido em 15/03/1920, em São Paulo"
	regexp.MustCompile(`[Nn]ascid[oa]\s+em\s+(` + datePhrase + `)(?:,?\s+em\s+([^.,;\n]+))?`),
	// "Nascida em São Paulo" or any unrecognized phrase after "em"
	regexp.MustCompile(`[Nn]ascid[oa]\s+em\s+([^.,;\n]+)(?:,\s*(?:em\s+)?([^.,;\n]+))?`),
	// Abbreviated "n. 1920" entries from condensed listings
	regexp.MustCompile(`\bn\.\s*(` + datePhrase + `)`),
}

var deathPatterns = []*regexp.Regexp{
	// The age clause may sit between date and city:
	// "Faleceu em 1980, aos 60 anos, em São Paulo."
	regexp.MustCompile(`[Ff]alec(?:eu|id[oa])\s+em\s+(` + datePhrase + `)(?:,\s+aos\s+\d+\s+anos)?(?:,?\s+em\s+([^.,;\n]+))?`),
	regexp.MustCompile(`[Ff]alec(?:eu|id[oa])\s+em\s+([^.,;\n]+)(?:,\s*(?:em\s+)?([^.,;\n]+))?`),
	regexp.MustCompile(`†\s*(` + datePhrase + `)`),
}

var ageRegex = regexp.MustCompile(`aos\s+(\d+)\s+anos`)

// extractVitalInfo pulls birth and death facts from a member's section.
//
// Union sentences are stripped first so a spouse's "nascido em 1918" inside
// a "Casou-se com ..." clause never masquerades as the member's own birth.
func extractVitalInfo(text string) (model.VitalInfo, []string) {
	own := stripUnionSentences(text)

	var vi model.VitalInfo
	var notes []string

	birth, ok := matchEvent(birthPatterns, own)
	if ok {
		vi.Birth = birth
		if birth.Date == "" && birth.FormattedDate != "" {
			notes = append(notes, "birth date kept verbatim: "+birth.FormattedDate)
		}
	} else {
		notes = append(notes, "birth: no pattern matched")
	}

	death, ok := matchEvent(deathPatterns, own)
	if ok {
		vi.Death.Event = death
		if m := ageRegex.FindStringSubmatch(own); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil {
				vi.Death.Age = age
			}
		}
	}

	return vi, notes
}

// matchEvent tries each pattern in order and builds an event from the first
// match. An unparsable date phrase with no digits is reinterpreted as a
// location ("Nascida em São Paulo").
func matchEvent(patterns []*regexp.Regexp, text string) (model.Event, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		phrase := strings.TrimSpace(m[1])
		location := ""
		if len(m) > 2 {
			location = cleanLocation(m[2])
		}

		parsed := dates.Normalize(phrase)
		ev := model.Event{
			Date:          parsed.ISO,
			FormattedDate: parsed.Formatted,
			Location:      location,
		}

		if parsed.ISO == "" && !containsDigit(phrase) {
			// The phrase after "em" was a place, not a date.
			ev.FormattedDate = ""
			if ev.Location == "" {
				ev.Location = cleanLocation(phrase)
			}
		}

		return ev, true
	}
	return model.Event{}, false
}

// unionClauseRegex spots a marriage sentence; see unions.go for the full
// union pattern.
var unionClauseRegex = regexp.MustCompile(`[Cc]asou-se`)

// stripUnionSentences removes every sentence containing a marriage clause.
func stripUnionSentences(text string) string {
	sentences := splitSentences(text)
	var kept []string
	for _, s := range sentences {
		if unionClauseRegex.MatchString(s) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, ". ")
}

// splitSentences performs a crude period split. Dates like "15/03/1920."
// at sentence end are fine; dotted IDs inside a section body are rare and
// already consumed by the segmenter as boundaries.
func splitSentences(text string) []string {
	parts := strings.Split(text, ".")
	var out []string
	var pending string
	for _, p := range parts {
		// Re-join splits that broke a dotted ID or an abbreviation
		// ("1.2" or "n. 1920"): a fragment ending in a digit followed
		// by one starting with a digit belongs together.
		if pending != "" && endsWithDigit(pending) && startsWithDigit(p) {
			pending = pending + "." + p
			continue
		}
		if pending != "" {
			if s := strings.TrimSpace(pending); s != "" {
				out = append(out, s)
			}
		}
		pending = p
	}
	if s := strings.TrimSpace(pending); s != "" {
		out = append(out, s)
	}
	return out
}

func cleanLocation(raw string) string {
	loc := strings.TrimSpace(raw)
	loc = strings.TrimRight(loc, ".,;")
	return loc
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func endsWithDigit(s string) bool {
	s = strings.TrimRight(s, " \t")
	return len(s) > 0 && s[len(s)-1] >= '0' && s[len(s)-1] <= '9'
}

func startsWithDigit(s string) bool {
	s = strings.TrimLeft(s, " \t")
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
