package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
source = "/data/arvore.html"
photos_dir = "/data/fotos"
gender_policy = "unknown"
ancestors = true
min_section = 30

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source != "/data/arvore.html" || cfg.PhotosDir != "/data/fotos" {
		t.Errorf("paths = %q %q", cfg.Source, cfg.PhotosDir)
	}
	if cfg.GenderPolicy != "unknown" || !cfg.Ancestors || cfg.MinSection != 30 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("accent = %q", cfg.UI.Accent)
	}
	// Defaults survive for keys the file omits.
	if cfg.Output != "family-data.json" {
		t.Errorf("output = %q", cfg.Output)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("source = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output != "family-data.json" || cfg.GenderPolicy != "default-male" {
		t.Errorf("defaults = %+v", cfg)
	}
}
