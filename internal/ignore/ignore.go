package ignore

import "strings"

// defaultMarkers are substrings that identify generated source files. These
// never get linted: the generators own their formatting, and findings in
// generated code are pure noise.
var defaultMarkers = []string{
	"SwiftGen",
	"R.generated",
	".graphql",
}

// Filter decides whether a file is generated code.
type Filter struct {
	markers []string
}

// Default returns a Filter with the built-in marker set.
func Default() Filter {
	return Filter{markers: defaultMarkers}
}

// New returns a Filter with the built-in markers plus any extras.
func New(extra []string) Filter {
	f := Filter{markers: make([]string, 0, len(defaultMarkers)+len(extra))}
	f.markers = append(f.markers, defaultMarkers...)
	for _, m := range extra {
		if m != "" {
			f.markers = append(f.markers, m)
		}
	}
	return f
}

// Ignored reports whether the filename contains any marker. Plain
// case-sensitive substring containment — no glob or path semantics.
func (f Filter) Ignored(name string) bool {
	for _, m := range f.markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}
