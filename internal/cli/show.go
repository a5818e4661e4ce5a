package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pvmonteiro/tronco/internal/index"
	"github.com/pvmonteiro/tronco/internal/photos"
	"github.com/pvmonteiro/tronco/internal/ui"
)

var showDataFile string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one member record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openIndex(showDataFile)
		if err != nil {
			return handleError("index_failed", err, "Run 'tronco migrate' to produce the data file first")
		}
		defer db.Close()

		m, err := db.Get(args[0])
		if errors.Is(err, index.ErrMemberNotFound) {
			return handleError("member_not_found",
				fmt.Errorf("no member with id %q", args[0]),
				"Run 'tronco query' to list members")
		}
		if err != nil {
			return handleError("index_failed", err, "")
		}

		photo, hasPhoto := photos.Resolve(getConfig().PhotosDir, m.PhotoKey)

		if isJSONOutput() {
			data := map[string]interface{}{"member": m}
			if hasPhoto {
				data["photo"] = photo
			}
			outputSuccess(data, nil)
			return nil
		}
		fmt.Print(ui.FormatMember(m))
		if hasPhoto {
			fmt.Printf("  photo: %s\n", ui.FilePath(photo))
		}
		return nil
	},
}

// openIndex rebuilds the member index from the data file. The index lives
// in a .tronco directory next to the data file.
func openIndex(dataFile string) (*index.Database, error) {
	path := dataFile
	if path == "" {
		path = getConfig().Output
	}
	return index.RebuildFromFile(filepath.Dir(path), path)
}

func init() {
	showCmd.Flags().StringVar(&showDataFile, "data", "", "Data file to read (default from config)")
	rootCmd.AddCommand(showCmd)
}
