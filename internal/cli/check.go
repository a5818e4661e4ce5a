package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/check"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [data.json]",
	Short: "Re-validate an existing data file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(args)

		doc, err := loadDocument(path)
		if err != nil {
			return handleError("load_failed", err, "Run 'tronco migrate' to produce the data file first")
		}
		coll, err := doc.Collection()
		if err != nil {
			return handleError("load_failed", err, "")
		}

		report := check.Validate(coll)

		if isJSONOutput() {
			// The envelope stays ok: the command ran; the findings are
			// the data.
			outputSuccess(report, &Meta{Count: report.TotalMembers})
			return nil
		}

		for _, issue := range report.Errors {
			fmt.Printf("%s %s %s: %s\n",
				ui.Error("error"), ui.MemberID(issue.MemberID), issue.Field, issue.Message)
		}
		for _, issue := range report.Warnings {
			fmt.Printf("%s %s %s: %s\n",
				ui.Warning("warning"), ui.MemberID(issue.MemberID), issue.Field, issue.Message)
		}

		fmt.Printf("\n%d members, completeness %.1f%% %s\n",
			report.TotalMembers, report.Completeness,
			ui.Hint(ui.ErrorWarningCounts(len(report.Errors), len(report.Warnings))))

		if !report.IsValid() {
			return fmt.Errorf("validation failed with %d error(s)", len(report.Errors))
		}
		fmt.Println(ui.Success("data file is valid"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
