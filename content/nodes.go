// Package content defines the realized content tree produced and consumed by
// the layout pipeline: inline nodes, structural elements with resolvable
// locations, and the introspection contracts used to query an elaborated
// document.
package content

import (
	"strings"

	"github.com/zyoshoka/typst/counter"
)

// Node is a single piece of realized content.
type Node interface {
	Kind() string
}

// Text is a run of plain text.
type Text struct {
	Text string
}

func (*Text) Kind() string { return "text" }

// Space is a single word separator.
type Space struct{}

func (*Space) Kind() string { return "space" }

// Linebreak forces a line break.
type Linebreak struct{}

func (*Linebreak) Kind() string { return "linebreak" }

// Parbreak separates paragraphs.
type Parbreak struct{}

func (*Parbreak) Kind() string { return "parbreak" }

// Pagebreak forces a page break during pagination.
type Pagebreak struct{}

func (*Pagebreak) Kind() string { return "pagebreak" }

// Sequence is ordered child content.
type Sequence struct {
	Children []Node
}

func (*Sequence) Kind() string { return "sequence" }

// Seq builds a sequence, dropping nils and flattening nested sequences.
func Seq(children ...Node) Node {
	out := make([]Node, 0, len(children))
	for _, c := range children {
		switch n := c.(type) {
		case nil:
		case *Sequence:
			out = append(out, n.Children...)
		default:
			out = append(out, c)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Sequence{Children: out}
}

// Hide reserves the space its body would occupy without producing visible ink.
type Hide struct {
	Body Node
}

func (*Hide) Kind() string { return "hide" }

// Box wraps its body in a sized container. FrWidth > 0 makes the box claim
// that fraction of the remaining free space on the line.
type Box struct {
	Body    Node
	FrWidth float64
}

func (*Box) Kind() string { return "box" }

// Spacer is horizontal space, either fixed (Em) or elastic (Fr).
type Spacer struct {
	Em float64
	Fr float64
}

func (*Spacer) Kind() string { return "spacer" }

// Repeat fills available space by repeating its body, e.g. dotted leaders.
type Repeat struct {
	Body Node
}

func (*Repeat) Kind() string { return "repeat" }

// Link makes its body navigate to a document location.
type Link struct {
	Body   Node
	Target Location
}

func (*Link) Kind() string { return "link" }

// Numbering is an explicit numbering override. A nil Pattern removes the
// numbering entirely.
type Numbering struct {
	Pattern *counter.Pattern
}

// Props is a declarative property overlay for a subtree. Nil fields leave the
// underlying element untouched.
type Props struct {
	Outlined  *bool
	Numbering *Numbering
}

// Styled applies a property overlay to everything below it without mutating
// the original elements.
type Styled struct {
	Body  Node
	Props Props
}

func (*Styled) Kind() string { return "styled" }

// IsEmpty reports whether the node renders to nothing at all.
func IsEmpty(n Node) bool {
	switch t := n.(type) {
	case nil:
		return true
	case *Text:
		return t.Text == ""
	case *Sequence:
		for _, c := range t.Children {
			if !IsEmpty(c) {
				return false
			}
		}
		return true
	}
	return false
}

// Plain extracts raw text from a subtree. Hidden content is included, this is
// extraction, not rendering.
func Plain(n Node) string {
	var sb strings.Builder
	plain(n, &sb)
	return sb.String()
}

func plain(n Node, sb *strings.Builder) {
	switch t := n.(type) {
	case nil:
	case *Text:
		sb.WriteString(t.Text)
	case *Space:
		sb.WriteByte(' ')
	case *Linebreak:
		sb.WriteByte('\n')
	case *Parbreak:
		sb.WriteString("\n\n")
	case *Sequence:
		for _, c := range t.Children {
			plain(c, sb)
		}
	case *Hide:
		plain(t.Body, sb)
	case *Box:
		plain(t.Body, sb)
	case *Repeat:
		plain(t.Body, sb)
	case *Link:
		plain(t.Body, sb)
	case *Styled:
		plain(t.Body, sb)
	case *Heading:
		plain(t.Body, sb)
	case *Figure:
		plain(t.Caption, sb)
	}
}
