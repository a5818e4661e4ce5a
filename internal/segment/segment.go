// Package segment splits the flat source text into per-member sections.
//
// The printed family tree has no markup structure left after text
// extraction; the only reliable anchor is the dotted hierarchical ID that
// opens every member record ("1.2.3. MARIA ..."). Each anchor starts a new
// section running to the next anchor.
package segment

import (
	"regexp"
	"strings"

	"github.com/pvmonteiro/tronco/internal/memberid"
)

// DefaultMinLength is the noise threshold: sections shorter than this are
// artifacts of page headers, footers and cross-references, not records.
const DefaultMinLength = 20

// headerRegex anchors a member record: an optional generation label
// (F, N, BN, TN, QN, PN) followed by a dotted ID and a literal dot, at the
// start of a line. Requiring line start keeps years at sentence ends
// ("em 1920.") from opening phantom sections.
var headerRegex = regexp.MustCompile(`(?m)^[ \t]*(?:(F|BN|TN|QN|PN|N)[ \t]+)?(\d+(?:\.\d+)*)\.[ \t]`)

// Section is one member's slice of the source text.
type Section struct {
	ID    memberid.ID // Hierarchical ID from the header
	Label string      // Generation label preceding the ID, if any
	Text  string      // Full section text, header line included
	Start int         // Byte offset of the header in the source
}

// Skip records a section dropped during segmentation.
type Skip struct {
	ID     string
	Reason string
	Start  int
}

// Result holds the ordered sections and everything that was dropped.
type Result struct {
	Sections []Section
	Skipped  []Skip
}

// Lookup is an immutable cross-section index built once after segmentation.
// Field extractors use it to resolve a member's structural parent without
// re-walking the source.
type Lookup struct {
	byID map[memberid.ID]*Section
}

// Options configures segmentation.
type Options struct {
	// MinLength is the noise threshold; zero means DefaultMinLength.
	MinLength int
}

// Split segments the source text into one section per member record.
//
// The text before the first header is discarded (title pages, prefaces).
// Sections below the noise threshold are dropped, as is every repeat of an
// already-seen ID: the first occurrence wins and later ones are recorded as
// skips, never fatal.
func Split(text string, opts Options) Result {
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	matches := headerRegex.FindAllStringSubmatchIndex(text, -1)
	res := Result{}
	if len(matches) == 0 {
		return res
	}

	seen := make(map[memberid.ID]bool, len(matches))
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		label := ""
		if m[2] >= 0 {
			label = text[m[2]:m[3]]
		}
		rawID := text[m[4]:m[5]]

		id, err := memberid.Parse(rawID)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{ID: rawID, Reason: "malformed id", Start: start})
			continue
		}

		body := strings.TrimSpace(text[start:end])
		if len(body) < minLen {
			res.Skipped = append(res.Skipped, Skip{ID: rawID, Reason: "below noise threshold", Start: start})
			continue
		}

		if seen[id] {
			res.Skipped = append(res.Skipped, Skip{ID: rawID, Reason: "duplicate id, first occurrence kept", Start: start})
			continue
		}
		seen[id] = true

		res.Sections = append(res.Sections, Section{
			ID:    id,
			Label: label,
			Text:  body,
			Start: start,
		})
	}

	return res
}

// NewLookup builds the cross-section index. The sections slice must not be
// mutated afterwards; the lookup holds pointers into it.
func NewLookup(sections []Section) *Lookup {
	byID := make(map[memberid.ID]*Section, len(sections))
	for i := range sections {
		byID[sections[i].ID] = &sections[i]
	}
	return &Lookup{byID: byID}
}

// Get returns the section for id, if one exists.
func (l *Lookup) Get(id memberid.ID) (*Section, bool) {
	s, ok := l.byID[id]
	return s, ok
}

// Len returns the number of indexed sections.
func (l *Lookup) Len() int {
	return len(l.byID)
}
