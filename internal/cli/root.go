// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/config"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tronco",
	Short: "Tronco - family tree migration tool",
	Long: `Tronco migrates the printed family tree export into the structured
data file the genealogy website is built from: it segments the text by
member ID, extracts names, dates, unions and parentage, derives sibling
and ancestor relations, validates the result and reports what needs
fixing.

"Tronco" is the trunk of the family tree.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "init", "completion", "help", "version":
			return nil
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent, cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// loadConfig loads the global config (honoring --config) and overlays the
// nearest project manifest.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		loaded, err := config.LoadFrom(configPath)
		if err != nil {
			return nil, err
		}
		if wd, err := os.Getwd(); err == nil {
			if path, ferr := config.FindManifest(wd); ferr == nil {
				if m, merr := config.LoadManifest(path); merr == nil {
					loaded.Apply(m)
				}
			}
		}
		return loaded, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.Resolve(wd)
}
