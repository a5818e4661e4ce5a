package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/index"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var (
	queryDataFile       string
	queryName           string
	queryGeneration     int
	queryMissingVitals  bool
	queryMissingParents bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter members by name, generation or missing fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openIndex(queryDataFile)
		if err != nil {
			return handleError("index_failed", err, "Run 'tronco migrate' to produce the data file first")
		}
		defer db.Close()

		rows, err := db.Query(index.Filter{
			Name:           queryName,
			Generation:     queryGeneration,
			MissingVitals:  queryMissingVitals,
			MissingParents: queryMissingParents,
		})
		if err != nil {
			return handleError("query_failed", err, "")
		}

		if isJSONOutput() {
			outputSuccess(rows, &Meta{Count: len(rows)})
			return nil
		}

		if len(rows) == 0 {
			fmt.Println(ui.Hint("no members match"))
			return nil
		}

		tbl := &ui.Table{Headers: []string{"ID", "NAME", "GEN", "GENDER", "BORN", "DIED"}}
		for _, r := range rows {
			tbl.Rows = append(tbl.Rows, []string{
				r.ID, r.Name, strconv.Itoa(r.Generation), r.Gender,
				yearOrDash(r.BirthYear), yearOrDash(r.DeathYear),
			})
		}
		fmt.Print(tbl.Render())
		fmt.Println(ui.Hint(fmt.Sprintf("%d member(s)", len(rows))))
		return nil
	},
}

func yearOrDash(year int) string {
	if year == 0 {
		return "–"
	}
	return strconv.Itoa(year)
}

func init() {
	queryCmd.Flags().StringVar(&queryDataFile, "data", "", "Data file to read (default from config)")
	queryCmd.Flags().StringVarP(&queryName, "name", "n", "", "Name substring to match")
	queryCmd.Flags().IntVarP(&queryGeneration, "generation", "g", index.AnyGeneration, "Generation to filter on")
	queryCmd.Flags().BoolVar(&queryMissingVitals, "missing-vitals", false, "Only members without birth or death info")
	queryCmd.Flags().BoolVar(&queryMissingParents, "missing-parents", false, "Only members without parent names")
	rootCmd.AddCommand(queryCmd)
}
