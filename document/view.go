// Package document implements an in-memory elaborated document: a content
// tree with locations assigned, pages and counters resolved, queryable
// through the content.Introspector contract. Loaders build the tree from
// Markdown or XML sources; Compile settles it for introspection.
package document

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/counter"
)

// View is a settled document snapshot. Once compiled it is read-only: every
// introspection answers from precomputed state, counters are never advanced.
type View struct {
	root   content.Node
	lang   string
	pages  int
	elems  map[uint64]content.Node
	labels map[string]content.Location

	counters map[counter.Key]map[uint64][]int
	pagePat  map[uint64]*counter.Pattern
}

// PageNumberingSpan assigns a display pattern to physical pages starting at
// FromPage (1-based). An empty pattern removes page numbering from the span.
type PageNumberingSpan struct {
	FromPage int
	Pattern  string
}

// CompileOptions controls pagination bookkeeping during Compile.
type CompileOptions struct {
	// Lang is the document language as a BCP 47 tag, consulted by outline
	// title localization.
	Lang string
	// PageNumbering lists numbering spans in ascending page order. Pages
	// before the first span carry no numbering.
	PageNumbering []PageNumberingSpan
}

// Compile walks the content tree in document order, assigns locations to
// structural elements, resolves page and element counters and returns the
// settled view. The tree is owned by the view afterwards.
func Compile(ctx context.Context, root content.Node, opts CompileOptions, log *zap.Logger) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spans := make([]span, 0, len(opts.PageNumbering))
	for _, s := range opts.PageNumbering {
		if s.FromPage < 1 {
			return nil, fmt.Errorf("invalid page numbering span: page %d", s.FromPage)
		}
		var pat *counter.Pattern
		if s.Pattern != "" {
			var err error
			if pat, err = counter.ParsePattern(s.Pattern); err != nil {
				return nil, fmt.Errorf("unable to parse page numbering: %w", err)
			}
		}
		spans = append(spans, span{from: s.FromPage, pat: pat})
	}

	v := &View{
		root:   root,
		lang:   opts.Lang,
		elems:  map[uint64]content.Node{},
		labels: map[string]content.Location{},
		counters: map[counter.Key]map[uint64][]int{
			counter.KeyPage:    {},
			counter.KeyHeading: {},
		},
		pagePat: map[uint64]*counter.Pattern{},
	}

	c := &compiler{view: v, page: 1, fcounts: map[string]int{}, spans: spans, log: log}
	c.walk(root, content.Props{})
	v.pages = c.page

	log.Debug("Document compiled",
		zap.Int("pages", v.pages),
		zap.Int("elements", len(v.elems)),
		zap.Int("labels", len(v.labels)))
	return v, nil
}

type span struct {
	from int
	pat  *counter.Pattern
}

type compiler struct {
	view    *View
	page    int
	nextLoc uint64
	hcounts []int
	fcounts map[string]int
	spans   []span
	log     *zap.Logger
}

func (c *compiler) walk(n content.Node, overlay content.Props) {
	switch t := n.(type) {
	case nil:
	case *content.Sequence:
		for _, child := range t.Children {
			c.walk(child, overlay)
		}
	case *content.Styled:
		if t.Props.Outlined != nil {
			overlay.Outlined = t.Props.Outlined
		}
		if t.Props.Numbering != nil {
			overlay.Numbering = t.Props.Numbering
		}
		c.walk(t.Body, overlay)
	case *content.Hide:
		c.walk(t.Body, overlay)
	case *content.Box:
		c.walk(t.Body, overlay)
	case *content.Repeat:
		c.walk(t.Body, overlay)
	case *content.Link:
		c.walk(t.Body, overlay)
	case *content.Pagebreak:
		c.page++
	case *content.Heading:
		numbering := t.Numbering
		if overlay.Numbering != nil {
			numbering = overlay.Numbering.Pattern
		}
		// only numbered headings step the counter, so suppressed content
		// (a finalized outline, for one) cannot pollute numbering state
		if numbering != nil {
			level := max(t.Level, 1)
			for len(c.hcounts) < level {
				c.hcounts = append(c.hcounts, 0)
			}
			c.hcounts[level-1]++
			c.hcounts = c.hcounts[:level]
		}
		c.place(t, &t.Loc, t.Label)
		c.view.counters[counter.KeyHeading][t.Loc.ID] = append([]int(nil), c.hcounts...)
		c.walk(t.Body, overlay)
	case *content.Figure:
		numbering := t.Numbering
		if overlay.Numbering != nil {
			numbering = overlay.Numbering.Pattern
		}
		if numbering != nil {
			c.fcounts[t.FigKind]++
		}
		c.place(t, &t.Loc, t.Label)
		key := counter.FigureKey(t.FigKind)
		if c.view.counters[key] == nil {
			c.view.counters[key] = map[uint64][]int{}
		}
		c.view.counters[key][t.Loc.ID] = []int{c.fcounts[t.FigKind]}
		c.walk(t.Caption, overlay)
	}
}

// place assigns a fresh location to an element and records the page state
// active there.
func (c *compiler) place(n content.Node, loc *content.Location, label string) {
	if loc.Zero() {
		c.nextLoc++
		*loc = content.Location{ID: c.nextLoc}
	} else if c.nextLoc < loc.ID {
		// preassigned locations (tests mostly) move the allocator forward
		c.nextLoc = loc.ID
	}
	c.view.elems[loc.ID] = n
	c.view.counters[counter.KeyPage][loc.ID] = []int{c.page}
	c.view.pagePat[loc.ID] = c.patternFor(c.page)

	if label == "" {
		return
	}
	if prev, exists := c.view.labels[label]; exists {
		c.log.Debug("Duplicate label, keeping first occurrence",
			zap.String("label", label), zap.Uint64("location", prev.ID))
		return
	}
	c.view.labels[label] = *loc
}

func (c *compiler) patternFor(page int) *counter.Pattern {
	var pat *counter.Pattern
	for _, s := range c.spans {
		if s.from > page {
			break
		}
		pat = s.pat
	}
	return pat
}

// Root returns the compiled content tree.
func (v *View) Root() content.Node { return v.root }

// Lang returns the document language tag provided at compile time.
func (v *View) Lang() string { return v.lang }

// Pages returns the number of physical pages.
func (v *View) Pages() int { return v.pages }

// LabelLocation resolves an anchor label to its location.
func (v *View) LabelLocation(label string) (content.Location, bool) {
	loc, ok := v.labels[label]
	return loc, ok
}

// Query implements content.Introspector.
func (v *View) Query(sel content.Selector) []content.Node {
	return content.Collect(v.root, sel)
}

// CounterAt implements content.Introspector.
func (v *View) CounterAt(key counter.Key, loc content.Location) ([]int, error) {
	values, ok := v.counters[key][loc.ID]
	if !ok {
		return nil, fmt.Errorf("unresolved location %d for counter %q", loc.ID, key)
	}
	return values, nil
}

// PageNumberingAt implements content.Introspector.
func (v *View) PageNumberingAt(loc content.Location) (*counter.Pattern, error) {
	if _, ok := v.elems[loc.ID]; !ok {
		return nil, fmt.Errorf("unresolved location %d", loc.ID)
	}
	return v.pagePat[loc.ID], nil
}
