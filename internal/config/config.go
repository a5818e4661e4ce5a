// Package config handles global tronco configuration and the per-project
// manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global tronco configuration.
type Config struct {
	// Source is the default export file to migrate.
	Source string `toml:"source"`

	// Output is the default data file path.
	Output string `toml:"output"`

	// PhotosDir is where member portraits live, for photo key resolution.
	PhotosDir string `toml:"photos_dir"`

	// GenderPolicy is the fallback when a record has no gender signal:
	// "default-male" or "unknown".
	GenderPolicy string `toml:"gender_policy"`

	// Ancestors enables the ancestors list on every record.
	Ancestors bool `toml:"ancestors"`

	// MinSection overrides the segmenter noise threshold; zero keeps the
	// built-in default.
	MinSection int `toml:"min_section"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering: an ANSI code ("0" to "255") or a hex color ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour theme used for rendered markdown.
	CodeTheme string `toml:"code_theme"`
}

// Default returns the built-in defaults applied before any file is read.
func Default() *Config {
	return &Config{
		Output:       "family-data.json",
		GenderPolicy: "default-male",
	}
}

// Load loads the configuration from the default location. Returns the
// defaults if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// DefaultPath returns the default config file path. Checks
// ~/.config/tronco/config.toml first (XDG style), then falls back to the
// OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tronco", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tronco", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a commented default config file if none exists.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# tronco configuration

# Default export file to migrate
# source = "/path/to/arvore.html"

# Default data file to write
# output = "family-data.json"

# Directory holding member portraits
# photos_dir = "/path/to/photos"

# Fallback when a record has no gender signal: "default-male" or "unknown"
# gender_policy = "default-male"

# Populate relationships.ancestors on every record
# ancestors = false

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
