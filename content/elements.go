package content

import (
	"github.com/zyoshoka/typst/counter"
)

// Location is an opaque handle addressing an element's resolved position in
// an elaborated document. The zero Location means the element is detached
// (generated content that never went through pagination).
type Location struct {
	ID uint64
}

// Zero reports whether the location is unresolved.
func (l Location) Zero() bool { return l.ID == 0 }

// Locatable is satisfied by elements addressable by a document location.
type Locatable interface {
	Location() Location
}

// Heading is a section heading element.
type Heading struct {
	Level     int
	Body      Node
	Label     string // anchor identifier, may be empty
	Numbering *counter.Pattern
	Outlined  bool
	Loc       Location
}

func (*Heading) Kind() string { return "heading" }

func (h *Heading) Location() Location { return h.Loc }

// OutlineLevel returns the heading's nesting level, at least 1.
func (h *Heading) OutlineLevel() int {
	return max(h.Level, 1)
}

func (h *Heading) OutlineCounter() counter.Key { return counter.KeyHeading }

func (h *Heading) OutlineNumbering() *counter.Pattern { return h.Numbering }

// OutlineBody renders the heading's outline entry: its resolved numbering, if
// any, followed by the title.
func (h *Heading) OutlineBody(view Introspector) (Node, error) {
	if h.Numbering == nil {
		return h.Body, nil
	}
	values, err := view.CounterAt(counter.KeyHeading, h.Loc)
	if err != nil {
		return nil, err
	}
	return Seq(&Text{Text: h.Numbering.Format(values...)}, &Space{}, h.Body), nil
}

// Figure is a captioned float such as an image or a table.
type Figure struct {
	Caption    Node   // nil when the figure has no caption
	FigKind    string // "image", "table", ...
	Supplement string // display name, "Figure" when empty
	Label      string
	Numbering  *counter.Pattern
	Loc        Location
}

func (*Figure) Kind() string { return "figure" }

func (f *Figure) Location() Location { return f.Loc }

// OutlineLevel is always 1, figure listings are flat.
func (f *Figure) OutlineLevel() int { return 1 }

func (f *Figure) OutlineCounter() counter.Key { return counter.FigureKey(f.FigKind) }

func (f *Figure) OutlineNumbering() *counter.Pattern { return f.Numbering }

// OutlineBody renders the figure's outline entry from its caption. Figures
// without captions yield nothing and are skipped by the outline.
func (f *Figure) OutlineBody(view Introspector) (Node, error) {
	if f.Caption == nil {
		return nil, nil
	}
	if f.Numbering == nil {
		return f.Caption, nil
	}
	values, err := view.CounterAt(f.OutlineCounter(), f.Loc)
	if err != nil {
		return nil, err
	}
	supplement := f.Supplement
	if supplement == "" {
		supplement = "Figure"
	}
	return Seq(
		&Text{Text: supplement + " " + f.Numbering.Format(values...) + ":"},
		&Space{},
		f.Caption,
	), nil
}
