package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/config"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default global config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError("init_failed", err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("config at %s", ui.FilePath(path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
