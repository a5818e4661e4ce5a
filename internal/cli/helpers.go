package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pvmonteiro/tronco/internal/model"
)

// loadDocument reads and decodes an enriched data file.
func loadDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", path, err)
	}
	return &doc, nil
}

// dataPath resolves the data file from an optional argument, falling back
// to the configured output path.
func dataPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return getConfig().Output
}
