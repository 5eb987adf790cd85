package content

import (
	"github.com/zyoshoka/typst/counter"
)

// Introspector is the read-only query surface of an elaborated document. It
// is implemented by the document view and treated as settled for the duration
// of one introspective pass: implementations must answer purely from already
// resolved state and never advance counters.
type Introspector interface {
	// Query returns elements matching sel in stable document order. Style
	// overlays are applied to the returned elements.
	Query(sel Selector) []Node

	// CounterAt resolves the value of the named counter at a location.
	CounterAt(key counter.Key, loc Location) ([]int, error)

	// PageNumberingAt returns the page numbering pattern active at a
	// location, or nil when the document defines none there.
	PageNumberingAt(loc Location) (*counter.Pattern, error)
}
