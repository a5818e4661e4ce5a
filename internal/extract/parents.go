package extract

import (
	"regexp"

	"github.com/pvmonteiro/tronco/internal/model"
	"github.com/pvmonteiro/tronco/internal/segment"
)

// filiationRegex reads the member's own "Filho de X e Y" sentence.
var filiationRegex = regexp.MustCompile(
	`[Ff]ilh[oa]\s+de\s+([\p{Lu}][\p{Lu} '’\-]*?)\s+e\s+([\p{Lu}][\p{Lu} '’\-]*)`)

// parents resolves the member's father and mother in two phases.
//
// Phase 1 is structural: strip the last ID segment, look up the parent's
// own section, and pair the parent's name with the spouse from the parent's
// marriage clause. When the spouse later signed a different name, the
// signed name is the one recorded.
//
// Phase 2 falls back to the member's own filiation sentence when phase 1
// leaves a gap — the parent section may be missing or never married in the
// text (broken chains are tolerated; parents are names, not references).
func (e *Extractor) parents(sec segment.Section) model.Parents {
	var p model.Parents

	if parentID, ok := sec.ID.Parent(); ok {
		if psec, found := e.lookup.Get(parentID); found {
			p = parentsFromParentSection(psec)
		} else {
			e.diag(sec.ID, "parents", "parent section %s not found", parentID)
		}
	}

	if p.IsComplete() {
		return p
	}

	// Phase 2: the member's own filiation clause. Union sentences are
	// stripped first so a spouse's filiation does not bleed in.
	own := stripUnionSentences(sec.Text)
	if m := filiationRegex.FindStringSubmatch(own); m != nil {
		fromClause := assignByGender(cleanName(m[1]), cleanName(m[2]))
		if p.Father == "" {
			p.Father = fromClause.Father
		}
		if p.Mother == "" {
			p.Mother = fromClause.Mother
		}
	} else if p.Father == "" && p.Mother == "" {
		e.diag(sec.ID, "parents", "no filiation clause and no resolvable parent section")
	}

	return p
}

// parentsFromParentSection derives both parents from the structural
// parent's record: the parent supplies one slot by gender, the parent's
// first marriage clause supplies the other.
func parentsFromParentSection(psec *segment.Section) model.Parents {
	ident, ok := parseIdentity(psec.Text)
	if !ok {
		return model.Parents{}
	}

	// Union sentences carry the spouse's participles; strip them so a
	// "nascida em ..." inside the marriage clause cannot flip the parent's
	// gender and swap the father/mother slots.
	gender, _ := inferGender(stripUnionSentences(psec.Text), ident.Name, GenderPolicyUnknown)
	spouse := coParentName(psec.Text, gender)

	if gender == model.GenderFemale {
		return model.Parents{Mother: ident.Name, Father: spouse}
	}
	// Unknown parent gender falls back to the conventional order: the
	// numbered line of the tree is the father.
	return model.Parents{Father: ident.Name, Mother: spouse}
}

// coParentName extracts the spouse's name from the parent's marriage
// clause, following a signing clause whose pronoun points at the spouse.
func coParentName(text string, parentGender model.Gender) string {
	m := unionRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	name := cleanName(m[3])
	if !isPlausibleName(name) {
		return ""
	}

	if clause, ok := extractSigning(text); ok {
		spousePronoun := "Ela"
		if parentGender == model.GenderFemale {
			spousePronoun = "Ele"
		}
		if clause.Pronoun == spousePronoun {
			name = clause.Name
		}
	}

	return name
}
