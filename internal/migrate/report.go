package migrate

import (
	"fmt"
	"strings"
)

// maxListed caps per-category detail lines in the report; the full data
// lives in the JSON summary.
const maxListed = 25

// Markdown renders the run summary as the migration report.
func (s *Summary) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Migration Report\n\n")
	fmt.Fprintf(&b, "- **Source:** %s\n", s.Source)
	if s.DryRun {
		fmt.Fprintf(&b, "- **Output:** %s (dry run, nothing written)\n", s.Output)
	} else {
		fmt.Fprintf(&b, "- **Output:** %s\n", s.Output)
	}
	fmt.Fprintf(&b, "- **Run at:** %s\n\n", s.RunAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Results\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Sections found | %d |\n", s.SectionsFound)
	fmt.Fprintf(&b, "| Members extracted | %d |\n", s.MembersExtracted)
	fmt.Fprintf(&b, "| Sections skipped | %d |\n", len(s.Skipped))
	fmt.Fprintf(&b, "| Sections discarded | %d |\n", len(s.Discarded))
	if s.Report != nil {
		fmt.Fprintf(&b, "| Validation errors | %d |\n", len(s.Report.Errors))
		fmt.Fprintf(&b, "| Validation warnings | %d |\n", len(s.Report.Warnings))
		fmt.Fprintf(&b, "| Completeness | %.1f%% |\n", s.Report.Completeness)
	}
	b.WriteString("\n")

	if s.Report != nil && len(s.Report.Errors) > 0 {
		fmt.Fprintf(&b, "## Errors\n\n")
		for i, issue := range s.Report.Errors {
			if i == maxListed {
				fmt.Fprintf(&b, "- … and %d more\n", len(s.Report.Errors)-maxListed)
				break
			}
			fmt.Fprintf(&b, "- `%s` %s: %s\n", issue.MemberID, issue.Field, issue.Message)
		}
		b.WriteString("\n")
	}

	if s.Report != nil && len(s.Report.Warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for i, issue := range s.Report.Warnings {
			if i == maxListed {
				fmt.Fprintf(&b, "- … and %d more\n", len(s.Report.Warnings)-maxListed)
				break
			}
			fmt.Fprintf(&b, "- `%s` %s: %s\n", issue.MemberID, issue.Field, issue.Message)
		}
		b.WriteString("\n")
	}

	if len(s.Skipped) > 0 {
		fmt.Fprintf(&b, "## Skipped sections\n\n")
		for i, sk := range s.Skipped {
			if i == maxListed {
				fmt.Fprintf(&b, "- … and %d more\n", len(s.Skipped)-maxListed)
				break
			}
			fmt.Fprintf(&b, "- `%s`: %s\n", sk.ID, sk.Reason)
		}
		b.WriteString("\n")
	}

	if len(s.Diagnostics) > 0 {
		fmt.Fprintf(&b, "## Extraction diagnostics\n\n")
		for i, d := range s.Diagnostics {
			if i == maxListed {
				fmt.Fprintf(&b, "- … and %d more\n", len(s.Diagnostics)-maxListed)
				break
			}
			fmt.Fprintf(&b, "- `%s` %s: %s\n", d.ID, d.Field, d.Message)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	for _, r := range s.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	return b.String()
}
