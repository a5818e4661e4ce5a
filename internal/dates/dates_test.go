package dates

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantISO     string
		wantText    string
		approximate bool
	}{
		{
			name:     "slash date",
			raw:      "15/03/1920",
			wantISO:  "1920-03-15",
			wantText: "15/03/1920",
		},
		{
			name:     "bare year defaults day and month",
			raw:      "1920",
			wantISO:  "1920-01-01",
			wantText: "1920",
		},
		{
			name:        "approximate year",
			raw:         "~1885",
			wantISO:     "1885-01-01",
			wantText:    "~1885",
			approximate: true,
		},
		{
			name:     "written month",
			raw:      "15 de março de 1920",
			wantISO:  "1920-03-15",
			wantText: "15 de março de 1920",
		},
		{
			name:     "written month uppercase",
			raw:      "3 de Janeiro de 1901",
			wantISO:  "1901-01-03",
			wantText: "3 de Janeiro de 1901",
		},
		{
			name:     "already ISO",
			raw:      "1920-03-15",
			wantISO:  "1920-03-15",
			wantText: "1920-03-15",
		},
		{
			name:     "free text keeps formatted only",
			raw:      "texto livre",
			wantISO:  "",
			wantText: "texto livre",
		},
		{
			name:     "invalid day rejected",
			raw:      "32/01/1920",
			wantISO:  "",
			wantText: "32/01/1920",
		},
		{
			name:     "invalid month rejected",
			raw:      "15/13/1920",
			wantISO:  "",
			wantText: "15/13/1920",
		},
		{
			name:     "empty input",
			raw:      "",
			wantISO:  "",
			wantText: "",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  1920  ",
			wantISO:  "1920-01-01",
			wantText: "1920",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got.ISO != tt.wantISO {
				t.Errorf("ISO = %q, want %q", got.ISO, tt.wantISO)
			}
			if got.Formatted != tt.wantText {
				t.Errorf("Formatted = %q, want %q", got.Formatted, tt.wantText)
			}
			if got.Approximate != tt.approximate {
				t.Errorf("Approximate = %v, want %v", got.Approximate, tt.approximate)
			}
		})
	}
}

func TestYear(t *testing.T) {
	if got := Year("1920-03-15"); got != 1920 {
		t.Errorf("Year(1920-03-15) = %d, want 1920", got)
	}
	if got := Year("not a date"); got != 0 {
		t.Errorf("Year(not a date) = %d, want 0", got)
	}
	if got := Year(""); got != 0 {
		t.Errorf("Year(empty) = %d, want 0", got)
	}
}

func TestIsISO(t *testing.T) {
	valid := []string{"1920-03-15", "2001-12-31"}
	invalid := []string{"1920-13-01", "1920-02-30", "15/03/1920", "1920", ""}

	for _, s := range valid {
		if !IsISO(s) {
			t.Errorf("IsISO(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsISO(s) {
			t.Errorf("IsISO(%q) = true, want false", s)
		}
	}
}

func TestFormatISO(t *testing.T) {
	got, err := FormatISO("1920-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "15/03/1920" {
		t.Errorf("FormatISO = %q, want 15/03/1920", got)
	}

	if _, err := FormatISO("garbage"); err == nil {
		t.Error("expected error for invalid input")
	}
}
