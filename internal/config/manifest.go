package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the per-project manifest filename.
const ManifestName = "tronco.yaml"

// Manifest is the per-project override file, found next to the data it
// describes. Fields are pointers so an absent key leaves the global
// setting untouched.
type Manifest struct {
	Source       *string `yaml:"source"`
	Output       *string `yaml:"output"`
	PhotosDir    *string `yaml:"photos_dir"`
	GenderPolicy *string `yaml:"gender_policy"`
	Ancestors    *bool   `yaml:"ancestors"`
	MinSection   *int    `yaml:"min_section"`
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// FindManifest walks up from dir looking for tronco.yaml. Returns
// os.ErrNotExist when no ancestor directory has one.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// Apply overlays the manifest onto the config, project settings winning.
func (c *Config) Apply(m *Manifest) {
	if m == nil {
		return
	}
	if m.Source != nil {
		c.Source = *m.Source
	}
	if m.Output != nil {
		c.Output = *m.Output
	}
	if m.PhotosDir != nil {
		c.PhotosDir = *m.PhotosDir
	}
	if m.GenderPolicy != nil {
		c.GenderPolicy = *m.GenderPolicy
	}
	if m.Ancestors != nil {
		c.Ancestors = *m.Ancestors
	}
	if m.MinSection != nil {
		c.MinSection = *m.MinSection
	}
}

// Resolve loads the global config and overlays the nearest manifest from
// the working directory, if any.
func Resolve(workDir string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	path, err := FindManifest(workDir)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	m, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	cfg.Apply(m)
	return cfg, nil
}
