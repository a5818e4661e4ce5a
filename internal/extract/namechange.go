package extract

import (
	"regexp"
)

// signingRegex detects the legal-name adoption clause:
// "Ela passou a assinar MARIA DA SILVA SOUZA".
var signingRegex = regexp.MustCompile(`([Ee]le|[Ee]la)\s+passou\s+a\s+assinar\s+([\p{Lu}][\p{Lu} '’\-]*)`)

// signingClause is one parsed name-adoption clause.
type signingClause struct {
	Pronoun string // normalized to "Ele" or "Ela"
	Name    string
}

// extractSigning finds the first signing clause in the text.
func extractSigning(text string) (signingClause, bool) {
	m := signingRegex.FindStringSubmatch(text)
	if m == nil {
		return signingClause{}, false
	}

	name := cleanName(m[2])
	if !isPlausibleName(name) {
		return signingClause{}, false
	}

	pronoun := "Ele"
	if m[1] == "Ela" || m[1] == "ela" {
		pronoun = "Ela"
	}
	return signingClause{Pronoun: pronoun, Name: name}, true
}
