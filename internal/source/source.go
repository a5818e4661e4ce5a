// Package source loads the family tree export and reduces it to the flat
// text stream the segmenter consumes.
//
// The export circulates in two shapes: the original printed HTML and
// hand-made markdown transcriptions. Both reduce to block-per-line plain
// text; the segmenter only needs record headers to sit at line starts.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a source file and extracts its text. The format is picked by
// extension; anything unrecognized is treated as plain text. A read
// failure is fatal to the migration run.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := FromHTML(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse HTML source %s: %w", path, err)
		}
		return text, nil
	case ".md", ".markdown":
		return FromMarkdown(data), nil
	default:
		return string(data), nil
	}
}
