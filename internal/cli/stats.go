package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/ui"
)

var statsDataFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openIndex(statsDataFile)
		if err != nil {
			return handleError("index_failed", err, "Run 'tronco migrate' to produce the data file first")
		}
		defer db.Close()

		stats, err := db.Stats()
		if err != nil {
			return handleError("stats_failed", err, "")
		}

		if isJSONOutput() {
			outputSuccess(stats, &Meta{Count: stats.TotalMembers})
			return nil
		}

		fmt.Println(ui.Header("Family tree statistics"))
		fmt.Printf("  members:      %d\n", stats.TotalMembers)
		fmt.Printf("  with vitals:  %d\n", stats.WithVitals)
		fmt.Printf("  with parents: %d\n", stats.WithParents)
		if len(stats.ByGender) > 0 {
			fmt.Printf("  gender:       %d male, %d female, %d unknown\n",
				stats.ByGender["male"], stats.ByGender["female"], stats.ByGender["unknown"])
		}

		if len(stats.Generations) > 0 {
			fmt.Println()
			tbl := &ui.Table{Headers: []string{"GENERATION", "MEMBERS"}}
			for _, g := range stats.Generations {
				tbl.Rows = append(tbl.Rows, []string{
					strconv.Itoa(g.Generation), strconv.Itoa(g.Members),
				})
			}
			fmt.Print(tbl.Render())
		}

		if stats.LastUpdated != "" {
			fmt.Println(ui.Hint(fmt.Sprintf("data version %s, updated %s, source %s",
				stats.Version, stats.LastUpdated, stats.Source)))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsDataFile, "data", "", "Data file to read (default from config)")
	rootCmd.AddCommand(statsCmd)
}
