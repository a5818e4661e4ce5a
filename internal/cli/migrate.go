package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/extract"
	"github.com/pvmonteiro/tronco/internal/migrate"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var (
	migrateOutput       string
	migrateMinSection   int
	migrateGenderPolicy string
	migrateAncestors    bool
	migrateDryRun       bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [source]",
	Short: "Run the full migration pipeline on a family tree export",
	Long: `Migrate parses the export (HTML, markdown or plain text), extracts
member records, derives relationships, validates the collection and
writes the enriched JSON data file plus a markdown migration report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := getConfig()

		src := conf.Source
		if len(args) == 1 {
			src = args[0]
		}
		if src == "" {
			return handleError("missing_source",
				fmt.Errorf("no source file given and none configured"),
				"Pass the export file as an argument or set source in tronco.yaml")
		}

		flags := cmd.Flags()
		policyName := stringFlagOr(flags, "gender-policy", migrateGenderPolicy, conf.GenderPolicy)
		policy, err := extract.ParseGenderPolicy(policyName)
		if err != nil {
			return handleError("invalid_gender_policy", err, "")
		}

		opts := migrate.Options{
			Source:       src,
			Output:       stringFlagOr(flags, "output", migrateOutput, conf.Output),
			MinSection:   intFlagOr(flags, "min-section", migrateMinSection, conf.MinSection),
			GenderPolicy: policy,
			Ancestors:    boolFlagOr(flags, "ancestors", migrateAncestors, conf.Ancestors),
			DryRun:       migrateDryRun,
		}

		var spinner *ui.Spinner
		if !isJSONOutput() {
			spinner = ui.NewSpinner("Migrating " + src)
			spinner.Start()
		}

		sum, err := migrate.Run(opts)

		if spinner != nil {
			spinner.Stop()
		}
		if err != nil {
			return handleError("migration_failed", err, "")
		}

		if isJSONOutput() {
			outputSuccess(sum, &Meta{Count: sum.MembersExtracted})
			return nil
		}

		printSummary(sum)
		return nil
	},
}

func printSummary(sum *migrate.Summary) {
	if sum.DryRun {
		fmt.Println(ui.Header("Migration (dry run)"))
	} else {
		fmt.Println(ui.Header("Migration complete"))
	}

	fmt.Printf("  %d sections, %d members extracted\n", sum.SectionsFound, sum.MembersExtracted)
	if n := len(sum.Skipped); n > 0 {
		fmt.Printf("  %s\n", ui.Warningf("%d section(s) skipped", n))
	}
	if n := len(sum.Discarded); n > 0 {
		fmt.Printf("  %s\n", ui.Warningf("%d section(s) discarded (no name)", n))
	}

	if r := sum.Report; r != nil {
		if r.IsValid() {
			fmt.Printf("  %s\n", ui.Successf("validation passed %s",
				ui.Hint(ui.ErrorWarningCounts(0, len(r.Warnings)))))
		} else {
			fmt.Printf("  %s\n", ui.Errorf("validation failed %s",
				ui.ErrorWarningCounts(len(r.Errors), len(r.Warnings))))
		}
		fmt.Printf("  completeness: %.1f%%\n", r.Completeness)
	}

	if !sum.DryRun {
		fmt.Printf("  wrote %s\n", ui.FilePath(sum.Output))
	}

	for _, rec := range sum.Recommendations {
		fmt.Printf("  %s %s\n", ui.Hint("→"), rec)
	}
	if !sum.DryRun {
		fmt.Println(ui.Hint("  Run 'tronco report' for the full report."))
	}
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "Output data file (default from config)")
	migrateCmd.Flags().IntVar(&migrateMinSection, "min-section", 0, "Minimum section length; shorter ones are noise")
	migrateCmd.Flags().StringVar(&migrateGenderPolicy, "gender-policy", "", "Fallback when no gender signal: default-male or unknown")
	migrateCmd.Flags().BoolVar(&migrateAncestors, "ancestors", false, "Populate relationships.ancestors on every record")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Run the pipeline without writing anything")
	rootCmd.AddCommand(migrateCmd)
}
