package content

// Selector decides whether an element belongs to a query result. Selectors
// are offered elements with all style overlays already applied, so a heading
// inside a Styled{Outlined: false} subtree is seen as not outlined.
type Selector func(Node) bool

// Headings selects every heading element.
func Headings() Selector {
	return func(n Node) bool {
		_, ok := n.(*Heading)
		return ok
	}
}

// OutlinedHeadings selects headings marked for outline inclusion. This is the
// default outline target.
func OutlinedHeadings() Selector {
	return func(n Node) bool {
		h, ok := n.(*Heading)
		return ok && h.Outlined
	}
}

// Figures selects figures of the given kind, or all figures when kind is
// empty.
func Figures(kind string) Selector {
	return func(n Node) bool {
		f, ok := n.(*Figure)
		return ok && (kind == "" || f.FigKind == kind)
	}
}

// Collect walks root in document order and returns elements matching sel.
// Property overlays from Styled wrappers are merged outside-in and applied to
// elements before they are offered to the selector; matched elements are
// returned in their effective form so later consumers observe the overlays
// too. The originals are never mutated.
func Collect(root Node, sel Selector) []Node {
	var out []Node
	collect(root, sel, Props{}, &out)
	return out
}

func collect(n Node, sel Selector, overlay Props, out *[]Node) {
	switch t := n.(type) {
	case nil:
	case *Sequence:
		for _, c := range t.Children {
			collect(c, sel, overlay, out)
		}
	case *Styled:
		collect(t.Body, sel, merge(overlay, t.Props), out)
	case *Hide:
		collect(t.Body, sel, overlay, out)
	case *Box:
		collect(t.Body, sel, overlay, out)
	case *Repeat:
		collect(t.Body, sel, overlay, out)
	case *Link:
		collect(t.Body, sel, overlay, out)
	case *Heading:
		eff := t.effective(overlay)
		if sel(eff) {
			*out = append(*out, eff)
		}
		collect(t.Body, sel, overlay, out)
	case *Figure:
		eff := t.effective(overlay)
		if sel(eff) {
			*out = append(*out, eff)
		}
		collect(t.Caption, sel, overlay, out)
	default:
		if sel(n) {
			*out = append(*out, n)
		}
	}
}

// merge layers inner on top of outer, inner wins.
func merge(outer, inner Props) Props {
	out := outer
	if inner.Outlined != nil {
		out.Outlined = inner.Outlined
	}
	if inner.Numbering != nil {
		out.Numbering = inner.Numbering
	}
	return out
}

func (h *Heading) effective(overlay Props) *Heading {
	if overlay.Outlined == nil && overlay.Numbering == nil {
		return h
	}
	eff := *h
	if overlay.Outlined != nil {
		eff.Outlined = *overlay.Outlined
	}
	if overlay.Numbering != nil {
		eff.Numbering = overlay.Numbering.Pattern
	}
	return &eff
}

func (f *Figure) effective(overlay Props) *Figure {
	if overlay.Numbering == nil {
		return f
	}
	eff := *f
	eff.Numbering = overlay.Numbering.Pattern
	return &eff
}
