// Package photos computes the photo lookup keys stamped on member records.
//
// The website resolves a member's portrait by filename: a normalized slug
// of the person's name. The key is computed here during enrichment; the
// photos themselves are managed outside the pipeline.
package photos

import (
	"os"
	"path/filepath"

	goslug "github.com/gosimple/slug"

	"github.com/pvmonteiro/tronco/internal/model"
)

// Key normalizes a person name to its photo filename slug.
// "JOÃO DA SILVA" -> "joao-da-silva".
func Key(name string) string {
	return goslug.Make(name)
}

// Stamp sets the photo key on every member of the collection. Members
// without a name keep an empty key.
func Stamp(c *model.Collection) {
	for _, m := range c.Members() {
		if m.Name == "" {
			continue
		}
		m.PhotoKey = Key(m.Name)
	}
}

// extensions the site serves, in lookup order.
var extensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Resolve returns the path of the photo file for a key inside dir, if one
// exists.
func Resolve(dir, key string) (string, bool) {
	if dir == "" || key == "" {
		return "", false
	}
	for _, ext := range extensions {
		p := filepath.Join(dir, key+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
