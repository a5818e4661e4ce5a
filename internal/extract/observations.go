package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pvmonteiro/tronco/internal/memberid"
)

// minObservationLength drops fragments too short to carry information
// ("Idem", stray initials left by the text extraction).
const minObservationLength = 10

// structuredPatterns is everything that is already captured elsewhere; a
// sentence matching any of these is not an observation.
var structuredPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Nn]ascid[oa]\s+em`),
	regexp.MustCompile(`[Ff]alec(?:eu|id[oa])\s+em`),
	regexp.MustCompile(`[Cc]asou-se`),
	regexp.MustCompile(`[Ff]ilh[oa]\s+de`),
	regexp.MustCompile(`passou\s+a\s+assinar`),
	regexp.MustCompile(`^\bn\.\s*\d`),
	regexp.MustCompile(`^†`),
}

// extractObservations keeps the free-text sentences that matched no
// structured pattern, in source order. The record header (label, ID and
// name run) is cut off first so it never leaks into a note.
func extractObservations(text string, maxLen int) []string {
	if loc := identityRegex.FindStringIndex(text); loc != nil {
		end := loc[1]
		// Mirror cleanName: the name run may have swallowed the capital
		// of the first prose word; back up so the word stays intact and
		// its sentence can still match the structured patterns.
		head := strings.TrimRight(text[:end], " \t")
		if i := strings.LastIndexAny(head, " \t"); i >= 0 && utf8.RuneCountInString(head[i+1:]) == 1 {
			end = i + 1
		}
		text = text[end:]
	}

	var out []string
	for _, sentence := range splitSentences(text) {
		s := strings.TrimSpace(sentence)
		if s == "" {
			continue
		}
		if isHeaderFragment(s) {
			continue
		}
		if n := utf8.RuneCountInString(s); n < minObservationLength || n > maxLen {
			continue
		}
		if isStructured(s) {
			continue
		}
		out = append(out, strings.Join(strings.Fields(s), " "))
	}
	return out
}

func isStructured(sentence string) bool {
	for _, re := range structuredPatterns {
		if re.MatchString(sentence) {
			return true
		}
	}
	return false
}

// isHeaderFragment spots leftovers of the record header: a bare dotted ID,
// optionally preceded by a generation label.
func isHeaderFragment(s string) bool {
	s = strings.TrimSpace(s)
	for _, label := range []string{"F ", "N ", "BN ", "TN ", "QN ", "PN "} {
		s = strings.TrimPrefix(s, label)
	}
	return memberid.IsValid(strings.TrimSpace(s))
}
