package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/migrate"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var reportDataFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the last migration report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFile := reportDataFile
		if dataFile == "" {
			dataFile = getConfig().Output
		}
		path := filepath.Join(filepath.Dir(dataFile), migrate.ReportFilename)

		content, err := os.ReadFile(path)
		if err != nil {
			return handleError("report_not_found",
				fmt.Errorf("no migration report at %s: %w", path, err),
				"Run 'tronco migrate' first")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"path": path, "markdown": string(content)}, nil)
			return nil
		}

		display := ui.NewDisplayContext()
		if !display.IsTTY {
			fmt.Print(string(content))
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
		if err != nil {
			// Fall back to the raw markdown rather than failing the command.
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDataFile, "data", "", "Data file the report sits next to (default from config)")
	rootCmd.AddCommand(reportCmd)
}
