package document

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/utils/debug"
)

// String returns a readable dump of the settled view. It exists solely for
// manual inspection during debugging.
func (v *View) String() string {
	if v == nil {
		return "<nil View>"
	}
	tw := debug.NewTreeWriter()

	tw.Line(0, "View: lang[%q] pages[%d] elements[%d]", v.lang, v.pages, len(v.elems))

	if len(v.labels) > 0 {
		tw.Line(0, "Labels: %d", len(v.labels))
		keys := slices.Collect(maps.Keys(v.labels))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			loc := v.labels[k]
			elem := v.elems[loc.ID]
			tw.Line(1, "Label[%q] location[%d] kind[%s]", k, loc.ID, elem.Kind())
			switch t := elem.(type) {
			case *content.Heading:
				tw.TextBlock(2, "title", content.Plain(t.Body))
			case *content.Figure:
				tw.TextBlock(2, "caption", content.Plain(t.Caption))
			}
		}
	}
	return tw.String()
}
