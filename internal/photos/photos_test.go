package photos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pvmonteiro/tronco/internal/model"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"JOÃO DA SILVA", "joao-da-silva"},
		{"MARIA JOSÉ D'ALMEIDA", "maria-jose-d-almeida"},
		{"ANA", "ana"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.name); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStamp(t *testing.T) {
	c := model.NewCollection()
	named := &model.Member{ID: "1", Name: "JOÃO DA SILVA", Gender: model.GenderMale}
	anon := &model.Member{ID: "1.1", Gender: model.GenderMale}
	for _, m := range []*model.Member{named, anon} {
		if err := c.Add(m); err != nil {
			t.Fatal(err)
		}
	}

	Stamp(c)

	if named.PhotoKey != "joao-da-silva" {
		t.Errorf("PhotoKey = %q", named.PhotoKey)
	}
	if anon.PhotoKey != "" {
		t.Errorf("unnamed member got key %q", anon.PhotoKey)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "joao-da-silva.png")
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := Resolve(dir, "joao-da-silva")
	if !ok || got != path {
		t.Errorf("Resolve = %q, %v", got, ok)
	}
	if _, ok := Resolve(dir, "maria"); ok {
		t.Error("expected miss for absent key")
	}
	if _, ok := Resolve("", "joao-da-silva"); ok {
		t.Error("expected miss for empty dir")
	}
}
