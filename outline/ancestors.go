package outline

import (
	"github.com/zyoshoka/typst/content"
)

// ancestors is the chain of still-open enclosing entries, shallow to deep,
// reconstructed from nothing but the level sequence of the match stream. It
// is rebuilt for every build and never outlives the query results it points
// into.
type ancestors []ancestor

type ancestor struct {
	out Outlinable
	loc content.Location
}

// admit evicts entries that no longer enclose an element of the given level.
// Anything at the same or a deeper level is a sibling or a cousin, never a
// parent, so levels on the chain stay strictly increasing.
func (a *ancestors) admit(level int) {
	for len(*a) > 0 && (*a)[len(*a)-1].out.OutlineLevel() >= level {
		*a = (*a)[:len(*a)-1]
	}
}

func (a *ancestors) push(out Outlinable, loc content.Location) {
	*a = append(*a, ancestor{out: out, loc: loc})
}
