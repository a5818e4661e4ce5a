package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromHTML(t *testing.T) {
	html := `<html><head><title>Família</title><style>p{color:red}</style></head>
<body>
<h1>Descendência</h1>
<p>1. <b>JOÃO DA SILVA</b>. Nascido em 1890.</p>
<p>F 1.2. MARIA DA SILVA. Nascida em 15/03/1920, em São Paulo.</p>
<script>alert("x")</script>
</body></html>`

	text, err := FromHTML([]byte(html))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	want := []string{
		"Descendência",
		"1. JOÃO DA SILVA . Nascido em 1890.",
		"F 1.2. MARIA DA SILVA. Nascida em 15/03/1920, em São Paulo.",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), text)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Error("script/style content leaked into text")
	}
}

func TestFromHTMLLatin1(t *testing.T) {
	// "JOÃO" in ISO-8859-1: Ã is byte 0xC3.
	raw := []byte(`<html><head><meta charset="iso-8859-1"></head><body><p>1. JO`)
	raw = append(raw, 0xC3)
	raw = append(raw, []byte(`O.</p></body></html>`)...)

	text, err := FromHTML(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "JOÃO") {
		t.Errorf("latin-1 not decoded: %q", text)
	}
}

func TestFromMarkdown(t *testing.T) {
	md := "# Descendência\n\n1\\. **JOÃO DA SILVA**. Nascido em 1890.\n\n" +
		"F 1.2. MARIA DA SILVA. Nascida em 1920.\n\n```\n9. NOT A RECORD\n```\n"

	text := FromMarkdown([]byte(md))

	if !strings.Contains(text, "1. JOÃO DA SILVA. Nascido em 1890.") {
		t.Errorf("missing flattened record: %q", text)
	}
	if !strings.Contains(text, "F 1.2. MARIA DA SILVA.") {
		t.Errorf("missing second record: %q", text)
	}
	if strings.Contains(text, "NOT A RECORD") {
		t.Error("fenced block leaked into text")
	}
	if strings.Contains(text, "**") {
		t.Error("emphasis markers survived flattening")
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	htmlPath := write("tree.html", "<html><body><p>1. JOÃO.</p></body></html>")
	mdPath := write("tree.md", "1\\. JOÃO.\n")
	txtPath := write("tree.txt", "1. JOÃO.\n")

	for _, p := range []string{htmlPath, mdPath, txtPath} {
		text, err := Load(p)
		if err != nil {
			t.Fatalf("Load(%s): %v", p, err)
		}
		if !strings.Contains(text, "1. JOÃO.") {
			t.Errorf("Load(%s) = %q", p, text)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
