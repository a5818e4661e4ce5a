// Package migrate runs the full migration pipeline: load the source
// export, segment it, extract member records, derive relationships,
// validate, enrich, and persist the site's data file.
//
// Only the initial source read is fatal. Everything downstream degrades:
// bad sections become skips, bad fields become diagnostics, validation
// problems become report entries. The operator decides what to fix.
package migrate

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pvmonteiro/tronco/internal/atomicfile"
	"github.com/pvmonteiro/tronco/internal/check"
	"github.com/pvmonteiro/tronco/internal/extract"
	"github.com/pvmonteiro/tronco/internal/model"
	"github.com/pvmonteiro/tronco/internal/photos"
	"github.com/pvmonteiro/tronco/internal/relate"
	"github.com/pvmonteiro/tronco/internal/segment"
	"github.com/pvmonteiro/tronco/internal/source"
)

// DataVersion is stamped into the output metadata.
const DataVersion = "2.0"

// ReportFilename is the markdown report written next to the output JSON.
const ReportFilename = "migration-report.md"

// Options configures one migration run.
type Options struct {
	// Source is the export file to read (.html, .md or plain text).
	Source string

	// Output is the JSON file to write.
	Output string

	// MinSection overrides the segmenter noise threshold; zero keeps the
	// default.
	MinSection int

	GenderPolicy extract.GenderPolicy

	// Ancestors enables relationships.ancestors on every record.
	Ancestors bool

	// DryRun runs the whole pipeline but writes nothing.
	DryRun bool

	// Now supplies the metadata timestamp; nil means time.Now.
	Now func() time.Time
}

// Summary is the outcome of a run, fed to the report renderer.
type Summary struct {
	Source string    `json:"source"`
	Output string    `json:"output"`
	RunAt  time.Time `json:"runAt"`
	DryRun bool      `json:"dryRun"`

	SectionsFound    int `json:"sectionsFound"`
	MembersExtracted int `json:"membersExtracted"`

	Skipped     []segment.Skip       `json:"skipped,omitempty"`
	Discarded   []string             `json:"discarded,omitempty"`
	Diagnostics []extract.Diagnostic `json:"diagnostics,omitempty"`

	Report          *check.Report `json:"report"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// Run executes the pipeline. The returned error is non-nil only for I/O
// failures (unreadable source, unwritable output); data problems land in
// the summary instead.
func Run(opts Options) (*Summary, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	text, err := source.Load(opts.Source)
	if err != nil {
		return nil, err
	}

	res := segment.Split(text, segment.Options{MinLength: opts.MinSection})
	lookup := segment.NewLookup(res.Sections)

	ex := extract.New(extract.Config{GenderPolicy: opts.GenderPolicy}, lookup)

	sum := &Summary{
		Source:        opts.Source,
		Output:        opts.Output,
		RunAt:         now(),
		DryRun:        opts.DryRun,
		SectionsFound: len(res.Sections),
		Skipped:       res.Skipped,
	}

	coll := model.NewCollection()
	for _, sec := range res.Sections {
		m, ok := ex.Member(sec)
		if !ok {
			sum.Discarded = append(sum.Discarded, sec.ID.String())
			continue
		}
		if err := coll.Add(m); err != nil {
			// The segmenter dedupes IDs; reaching this means a bug, but
			// one record must not abort the run.
			sum.Discarded = append(sum.Discarded, m.ID)
		}
	}
	sum.Diagnostics = ex.Diagnostics()
	sum.MembersExtracted = coll.Len()

	coll.SortByID()
	relate.Build(coll, relate.Options{Ancestors: opts.Ancestors})
	photos.Stamp(coll)

	sum.Report = check.Validate(coll)
	sum.Recommendations = recommend(sum)

	if opts.DryRun {
		return sum, nil
	}

	doc := model.NewDocument(coll, DataVersion, filepath.Base(opts.Source), sum.RunAt)
	if err := atomicfile.WriteJSON(opts.Output, doc); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}

	reportPath := filepath.Join(filepath.Dir(opts.Output), ReportFilename)
	if err := atomicfile.WriteFile(reportPath, []byte(sum.Markdown()), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", reportPath, err)
	}

	return sum, nil
}

// recommend turns run outcomes into operator guidance.
func recommend(sum *Summary) []string {
	var recs []string

	if sum.SectionsFound == 0 {
		recs = append(recs, "No member sections were found; check that the source is the printed family tree export.")
		return recs
	}

	if n := len(sum.Discarded); n > 0 {
		recs = append(recs, fmt.Sprintf("%d section(s) had no extractable name; review them in the source.", n))
	}
	for _, s := range sum.Skipped {
		if s.Reason == "duplicate id, first occurrence kept" {
			recs = append(recs, "Duplicate IDs were found; the first occurrence of each was kept. Verify the source numbering.")
			break
		}
	}
	if r := sum.Report; r != nil {
		if len(r.Errors) > 0 {
			recs = append(recs, fmt.Sprintf("%d validation error(s) must be fixed before publishing.", len(r.Errors)))
		}
		if r.Completeness < 50 && r.TotalMembers > 0 {
			recs = append(recs, fmt.Sprintf("Completeness is %.0f%%; most records are missing vital dates.", r.Completeness))
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "No issues found; the data file is ready to publish.")
	}
	return recs
}
