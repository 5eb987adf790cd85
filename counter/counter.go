// Package counter implements the numbering side of document introspection:
// names for location-addressable counters and the display patterns used to
// turn their values into text.
package counter

import "strings"

// Key names a document counter. Counters themselves live with the document
// view, a Key is only a handle used to ask for a value at a location.
type Key string

const (
	// KeyPage is the physical page counter.
	KeyPage Key = "page"
	// KeyHeading is the shared counter stepped by every heading.
	KeyHeading Key = "heading"
)

// FigureKey returns the counter key for figures of the given kind, so tables
// and images are numbered independently.
func FigureKey(kind string) Key {
	if kind == "" {
		return "figure"
	}
	return Key("figure:" + kind)
}

// Kind returns the element kind portion of the key ("figure:image" -> "figure").
func (k Key) Kind() string {
	if s, _, found := strings.Cut(string(k), ":"); found {
		return s
	}
	return string(k)
}
