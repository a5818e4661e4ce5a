// Package memberid centralizes parsing and manipulation of hierarchical
// member IDs.
//
// An ID is a dotted sequence of integers ("1", "1.2", "1.2.3") encoding the
// lineage path from the root ancestor. Every derived quantity (generation,
// parent, descent) is a pure function of the ID string, so all of that logic
// lives here instead of being re-derived with ad hoc string splitting at
// call sites.
package memberid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var idRegex = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ID is a hierarchical member identifier such as "1.2.3".
type ID string

// Parse validates s and returns it as an ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if !idRegex.MatchString(s) {
		return "", fmt.Errorf("invalid member id: %q", s)
	}
	return ID(s), nil
}

// IsValid reports whether s is a well-formed hierarchical ID.
func IsValid(s string) bool {
	return idRegex.MatchString(s)
}

// String returns the raw ID string.
func (id ID) String() string {
	return string(id)
}

// Depth returns the number of dot-separated segments.
func (id ID) Depth() int {
	if id == "" {
		return 0
	}
	return strings.Count(string(id), ".") + 1
}

// Generation returns the zero-based generation: segment count minus one.
// The root ancestor ("1") is generation 0.
func (id ID) Generation() int {
	return id.Depth() - 1
}

// Parent returns the ID with the last segment removed.
// The second return value is false for root IDs.
func (id ID) Parent() (ID, bool) {
	i := strings.LastIndex(string(id), ".")
	if i < 0 {
		return "", false
	}
	return id[:i], true
}

// IsChildOf reports whether id is exactly one level below parent.
func (id ID) IsChildOf(parent ID) bool {
	p, ok := id.Parent()
	return ok && p == parent
}

// IsDescendantOf reports whether id is anywhere below ancestor.
func (id ID) IsDescendantOf(ancestor ID) bool {
	return id != ancestor && strings.HasPrefix(string(id), string(ancestor)+".")
}

// Ancestors returns all ancestor IDs from the root down to the immediate
// parent. A root ID has no ancestors.
func (id ID) Ancestors() []ID {
	var out []ID
	cur := id
	for {
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		out = append(out, parent)
		cur = parent
	}
	// Reverse so the root comes first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Segments returns the numeric segments of the ID.
func (id ID) Segments() []int {
	parts := strings.Split(string(id), ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		out[i] = n
	}
	return out
}

// Less orders IDs by their numeric segments, so "1.2" < "1.10" and parents
// sort before their children.
func Less(a, b ID) bool {
	as, bs := a.Segments(), b.Segments()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}
