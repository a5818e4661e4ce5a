package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pvmonteiro/tronco/internal/memberid"
)

// identityRegex matches the record header: an optional generation label
// (F filho, N neto, BN bisneto, TN trineto, QN tetraneto, PN pentaneto),
// the dotted ID, and an uppercase name run. The name class includes
// accented Latin capitals, apostrophes and hyphens ("SANT'ANA",
// "VILLAS-BOAS") and stops at the first lowercase letter or newline.
var identityRegex = regexp.MustCompile(`^[ \t]*(?:(F|BN|TN|QN|PN|N)[ \t]+)?(\d+(?:\.\d+)*)\.[ \t]+([\p{Lu}][\p{Lu} '’\-]*)`)

// Identity is the parsed record header.
type Identity struct {
	Label string
	ID    memberid.ID
	Name  string
}

// parseIdentity reads the header at the start of a section. It fails when
// no uppercase name run follows the ID; such sections carry no person.
func parseIdentity(text string) (Identity, bool) {
	m := identityRegex.FindStringSubmatch(text)
	if m == nil {
		return Identity{}, false
	}

	id, err := memberid.Parse(m[2])
	if err != nil {
		return Identity{}, false
	}

	name := cleanName(m[3])
	if !isPlausibleName(name) {
		return Identity{}, false
	}

	return Identity{Label: m[1], ID: id, Name: name}, true
}

// cleanName trims stray punctuation and collapses runs of spaces left over
// from the text extraction.
//
// A trailing single-letter token is dropped: when no punctuation separates
// the name from the following prose ("MARIA DA SILVA Nascida em 1920"), the
// uppercase run swallows the capital of the next word.
func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.Trim(name, "-'’ ")
	fields := strings.Fields(name)
	if n := len(fields); n > 1 && utf8.RuneCountInString(fields[n-1]) == 1 {
		fields = fields[:n-1]
	}
	return strings.Join(fields, " ")
}

// isPlausibleName rejects captures too short to be a person's name.
func isPlausibleName(name string) bool {
	letters := 0
	for _, r := range name {
		if r != ' ' && r != '-' && r != '\'' && r != '’' {
			letters++
		}
	}
	return letters >= 2
}
