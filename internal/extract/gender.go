package extract

import (
	"strings"

	"github.com/pvmonteiro/tronco/internal/model"
)

// genderSignal names which cue decided the gender, for diagnostics.
type genderSignal int

const (
	genderSignalNone genderSignal = iota
	genderSignalVerb
	genderSignalName
)

// inferGender determines gender from the section prose.
//
// Priority: an explicit gendered verb form ("Nascido"/"Nascida",
// "Falecido"/"Falecida") always wins. Absent that, the first-name ending is
// a weak heuristic (-a feminine, -o masculine, standard Portuguese
// morphology). With no signal at all the configured policy applies.
func inferGender(text, name string, policy GenderPolicy) (model.Gender, genderSignal) {
	if g, ok := verbGender(text); ok {
		return g, genderSignalVerb
	}
	if g, ok := nameGender(name); ok {
		return g, genderSignalName
	}
	if policy == GenderPolicyUnknown {
		return model.GenderUnknown, genderSignalNone
	}
	return model.GenderMale, genderSignalNone
}

// verbTokens in source order of likelihood. The trailing space keeps
// "Nascida" from matching inside longer words.
var verbTokens = []struct {
	token  string
	gender model.Gender
}{
	{"Nascido ", model.GenderMale},
	{"nascido ", model.GenderMale},
	{"Nascida ", model.GenderFemale},
	{"nascida ", model.GenderFemale},
	{"Falecido ", model.GenderMale},
	{"falecido ", model.GenderMale},
	{"Falecida ", model.GenderFemale},
	{"falecida ", model.GenderFemale},
}

// verbGender picks the gender of the earliest gendered participle in the
// section. Position matters: the member's own birth clause comes before any
// union clause, so a spouse's "nascido em 1918" further down must not win.
func verbGender(text string) (model.Gender, bool) {
	best := -1
	var gender model.Gender
	for _, vt := range verbTokens {
		if i := strings.Index(text, vt.token); i >= 0 && (best < 0 || i < best) {
			best = i
			gender = vt.gender
		}
	}
	if best < 0 {
		return "", false
	}
	return gender, true
}

func nameGender(name string) (model.Gender, bool) {
	first, _, _ := strings.Cut(strings.TrimSpace(name), " ")
	if first == "" {
		return "", false
	}
	switch {
	case strings.HasSuffix(first, "A"):
		return model.GenderFemale, true
	case strings.HasSuffix(first, "O"):
		return model.GenderMale, true
	}
	return "", false
}
