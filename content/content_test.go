package content

import (
	"testing"

	"github.com/zyoshoka/typst/counter"
)

func heading(level int, title string, numbering string, outlined bool, loc uint64) *Heading {
	h := &Heading{
		Level:    level,
		Body:     &Text{Text: title},
		Outlined: outlined,
		Loc:      Location{ID: loc},
	}
	if numbering != "" {
		h.Numbering = counter.MustPattern(numbering)
	}
	return h
}

func TestSeq_Flattens(t *testing.T) {
	n := Seq(&Text{Text: "a"}, nil, Seq(&Space{}, &Text{Text: "b"}))
	seq, ok := n.(*Sequence)
	if !ok {
		t.Fatalf("Seq() = %T, want *Sequence", n)
	}
	if len(seq.Children) != 3 {
		t.Fatalf("Seq() children = %d, want 3", len(seq.Children))
	}
	if got := Plain(n); got != "a b" {
		t.Errorf("Plain() = %q, want %q", got, "a b")
	}
}

func TestSeq_SingleChildUnwrapped(t *testing.T) {
	n := Seq(&Text{Text: "only"})
	if _, ok := n.(*Text); !ok {
		t.Errorf("Seq() with one child = %T, want *Text", n)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want bool
	}{
		{"nil", nil, true},
		{"empty text", &Text{}, true},
		{"text", &Text{Text: "x"}, false},
		{"empty sequence", &Sequence{}, true},
		{"sequence of empties", Seq(&Text{}, &Text{}), true},
		{"space", &Space{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.node); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollect_DocumentOrder(t *testing.T) {
	doc := Seq(
		heading(1, "Intro", "", true, 1),
		&Parbreak{},
		heading(2, "Background", "", true, 2),
		&Figure{Caption: &Text{Text: "A plot"}, FigKind: "image", Loc: Location{ID: 3}},
		heading(1, "Methods", "", false, 4),
	)

	got := Collect(doc, OutlinedHeadings())
	if len(got) != 2 {
		t.Fatalf("Collect(OutlinedHeadings) = %d matches, want 2", len(got))
	}
	if Plain(got[0]) != "Intro" || Plain(got[1]) != "Background" {
		t.Errorf("Collect() order = %q, %q", Plain(got[0]), Plain(got[1]))
	}

	if figs := Collect(doc, Figures("image")); len(figs) != 1 {
		t.Errorf("Collect(Figures) = %d matches, want 1", len(figs))
	}
	if all := Collect(doc, Headings()); len(all) != 3 {
		t.Errorf("Collect(Headings) = %d matches, want 3", len(all))
	}
}

func TestCollect_StyledOverlayHidesHeadings(t *testing.T) {
	off := false
	doc := Seq(
		heading(1, "Real", "1.", true, 1),
		&Styled{
			Body:  Seq(heading(1, "Generated", "1.", true, 0)),
			Props: Props{Outlined: &off, Numbering: &Numbering{}},
		},
	)

	got := Collect(doc, OutlinedHeadings())
	if len(got) != 1 {
		t.Fatalf("Collect() = %d matches, want 1 (overlay must hide generated heading)", len(got))
	}
	if Plain(got[0]) != "Real" {
		t.Errorf("Collect() matched %q, want %q", Plain(got[0]), "Real")
	}

	// the overlay also strips numbering from effective elements
	all := Collect(doc, Headings())
	if len(all) != 2 {
		t.Fatalf("Collect(Headings) = %d, want 2", len(all))
	}
	gen := all[1].(*Heading)
	if gen.Numbering != nil {
		t.Error("overlay should have removed numbering from generated heading")
	}
	if gen.Outlined {
		t.Error("overlay should have cleared outlined flag")
	}
}

func TestCollect_DoesNotMutateOriginals(t *testing.T) {
	h := heading(1, "Real", "1.", true, 1)
	off := false
	doc := &Styled{Body: h, Props: Props{Outlined: &off}}

	_ = Collect(doc, Headings())
	if !h.Outlined {
		t.Error("Collect() mutated original heading")
	}
}

func TestHeading_OutlineBody(t *testing.T) {
	view := stubView{counters: map[uint64][]int{7: {2, 1}}}

	h := heading(2, "Background", "1.1", true, 7)
	body, err := h.OutlineBody(view)
	if err != nil {
		t.Fatalf("OutlineBody() error = %v", err)
	}
	if got := Plain(body); got != "2.1 Background" {
		t.Errorf("OutlineBody() = %q, want %q", got, "2.1 Background")
	}

	plain := heading(1, "Intro", "", true, 7)
	body, err = plain.OutlineBody(view)
	if err != nil {
		t.Fatalf("OutlineBody() error = %v", err)
	}
	if got := Plain(body); got != "Intro" {
		t.Errorf("OutlineBody() without numbering = %q, want %q", got, "Intro")
	}
}

func TestFigure_OutlineBody(t *testing.T) {
	view := stubView{counters: map[uint64][]int{3: {4}}}

	f := &Figure{
		Caption:   &Text{Text: "A nice figure"},
		FigKind:   "image",
		Numbering: counter.MustPattern("1"),
		Loc:       Location{ID: 3},
	}
	body, err := f.OutlineBody(view)
	if err != nil {
		t.Fatalf("OutlineBody() error = %v", err)
	}
	if got := Plain(body); got != "Figure 4: A nice figure" {
		t.Errorf("OutlineBody() = %q, want %q", got, "Figure 4: A nice figure")
	}

	uncaptioned := &Figure{FigKind: "image", Loc: Location{ID: 3}}
	body, err = uncaptioned.OutlineBody(view)
	if err != nil {
		t.Fatalf("OutlineBody() error = %v", err)
	}
	if body != nil {
		t.Error("OutlineBody() for uncaptioned figure must be nil")
	}
}

// stubView is a minimal Introspector for element rendering tests.
type stubView struct {
	counters map[uint64][]int
}

func (s stubView) Query(sel Selector) []Node { return nil }

func (s stubView) CounterAt(key counter.Key, loc Location) ([]int, error) {
	return s.counters[loc.ID], nil
}

func (s stubView) PageNumberingAt(loc Location) (*counter.Pattern, error) {
	return nil, nil
}
