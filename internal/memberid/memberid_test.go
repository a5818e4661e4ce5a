package memberid

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"1", true},
		{"1.2", true},
		{"1.2.3", true},
		{"10.20.30", true},
		{"  1.2 ", true},
		{"", false},
		{"1.", false},
		{".1", false},
		{"1..2", false},
		{"1.a", false},
		{"abc", false},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		if tt.valid && err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Parse(%q) expected error, got none", tt.input)
		}
	}
}

func TestGeneration(t *testing.T) {
	tests := []struct {
		id   ID
		want int
	}{
		{"1", 0},
		{"1.2", 1},
		{"1.2.3", 2},
		{"1.2.3.4.5", 4},
	}

	for _, tt := range tests {
		if got := tt.id.Generation(); got != tt.want {
			t.Errorf("%q.Generation() = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	parent, ok := ID("1.2.3").Parent()
	if !ok || parent != "1.2" {
		t.Errorf("Parent(1.2.3) = %q, %v; want 1.2, true", parent, ok)
	}

	if _, ok := ID("1").Parent(); ok {
		t.Error("root ID should have no parent")
	}
}

func TestGenerationInvariant(t *testing.T) {
	// For any child, generation(child) = generation(parent) + 1.
	ids := []ID{"1.2", "1.2.3", "1.2.3.4", "7.1"}
	for _, id := range ids {
		parent, ok := id.Parent()
		if !ok {
			t.Fatalf("expected parent for %q", id)
		}
		if id.Generation() != parent.Generation()+1 {
			t.Errorf("generation invariant violated for %q (parent %q)", id, parent)
		}
	}
}

func TestIsChildOf(t *testing.T) {
	tests := []struct {
		id, parent ID
		want       bool
	}{
		{"1.2", "1", true},
		{"1.2.3", "1.2", true},
		{"1.2.3", "1", false},  // grandchild, not child
		{"1.22", "1.2", false}, // prefix of the string, not of the path
		{"1.2", "1.2", false},
	}

	for _, tt := range tests {
		if got := tt.id.IsChildOf(tt.parent); got != tt.want {
			t.Errorf("%q.IsChildOf(%q) = %v, want %v", tt.id, tt.parent, got, tt.want)
		}
	}
}

func TestIsDescendantOf(t *testing.T) {
	if !ID("1.2.3.4").IsDescendantOf("1.2") {
		t.Error("1.2.3.4 should descend from 1.2")
	}
	if ID("1.22").IsDescendantOf("1.2") {
		t.Error("1.22 must not descend from 1.2")
	}
	if ID("1.2").IsDescendantOf("1.2") {
		t.Error("an ID does not descend from itself")
	}
}

func TestAncestors(t *testing.T) {
	got := ID("1.2.3").Ancestors()
	want := []ID{"1", "1.2"}
	if len(got) != len(want) {
		t.Fatalf("Ancestors(1.2.3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ancestors(1.2.3)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(ID("1").Ancestors()) != 0 {
		t.Error("root ID should have no ancestors")
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b ID
		want bool
	}{
		{"1.2", "1.10", true},
		{"1.10", "1.2", false},
		{"1", "1.1", true},
		{"1.2.3", "1.3", true},
		{"2", "10", true},
	}

	for _, tt := range tests {
		if got := Less(tt.a, tt.b); got != tt.want {
			t.Errorf("Less(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
