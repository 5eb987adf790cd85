// Package render flattens realized content into monospaced plain text. One
// character cell stands in for one em: hidden fragments reserve their width
// as blanks, elastic space and repeat fills stretch lines to the requested
// width. It is the preview surface of the pipeline, not a layout engine.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/zyoshoka/typst/content"
)

// DefaultWidth is used when the caller does not constrain line width.
const DefaultWidth = 60

type pieceKind int

const (
	pieceText pieceKind = iota
	pieceGap            // elastic blank
	pieceLeader         // elastic, filled by repeating a glyph pattern
)

type piece struct {
	kind pieceKind
	text string // literal text, or the leader's repeat unit
}

// Text renders a content tree to plain text lines of at most width cells.
// Width values below 1 fall back to DefaultWidth.
func Text(n content.Node, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	r := &renderer{width: width}
	r.walk(n)
	r.breakLine()
	out := strings.TrimRight(r.out.String(), "\n")
	if out != "" {
		out += "\n"
	}
	return out
}

type renderer struct {
	width int
	line  []piece
	out   strings.Builder
}

func (r *renderer) text(s string) {
	if s != "" {
		r.line = append(r.line, piece{kind: pieceText, text: s})
	}
}

func (r *renderer) walk(n content.Node) {
	switch t := n.(type) {
	case nil:
	case *content.Text:
		r.text(t.Text)
	case *content.Space:
		r.text(" ")
	case *content.Linebreak:
		r.breakLine()
	case *content.Parbreak:
		r.breakLine()
		r.out.WriteByte('\n')
	case *content.Pagebreak:
		r.breakLine()
		r.out.WriteByte('\n')
	case *content.Sequence:
		for _, c := range t.Children {
			r.walk(c)
		}
	case *content.Hide:
		r.text(strings.Repeat(" ", utf8.RuneCountInString(content.Plain(t.Body))))
	case *content.Box:
		if t.FrWidth > 0 {
			if rep, ok := t.Body.(*content.Repeat); ok {
				r.line = append(r.line, piece{kind: pieceLeader, text: content.Plain(rep.Body)})
			} else {
				// a sized box of non-repeating content is rendered inline,
				// the elastic width collapses
				r.walk(t.Body)
			}
			return
		}
		r.walk(t.Body)
	case *content.Spacer:
		if t.Fr > 0 {
			r.line = append(r.line, piece{kind: pieceGap})
			return
		}
		if cells := int(t.Em + 0.5); cells > 0 {
			r.text(strings.Repeat(" ", cells))
		}
	case *content.Repeat:
		r.line = append(r.line, piece{kind: pieceLeader, text: content.Plain(t.Body)})
	case *content.Link:
		r.walk(t.Body)
	case *content.Styled:
		r.walk(t.Body)
	case *content.Heading:
		r.breakLine()
		r.walk(t.Body)
		r.breakLine()
		r.out.WriteByte('\n')
	case *content.Figure:
		r.breakLine()
		r.walk(t.Caption)
		r.breakLine()
	}
}

// breakLine lays out the accumulated pieces: fixed text keeps its cells, the
// remaining free cells are split evenly between elastic pieces.
func (r *renderer) breakLine() {
	if len(r.line) == 0 {
		return
	}
	defer func() { r.line = r.line[:0] }()

	used := 0
	elastic := 0
	for _, p := range r.line {
		if p.kind == pieceText {
			used += utf8.RuneCountInString(p.text)
		} else {
			elastic++
		}
	}

	free := max(r.width-used, elastic) // at least one cell per elastic piece
	for _, p := range r.line {
		switch p.kind {
		case pieceText:
			r.out.WriteString(p.text)
		case pieceGap, pieceLeader:
			share := free / elastic
			free -= share
			elastic--
			if p.kind == pieceGap || p.text == "" {
				r.out.WriteString(strings.Repeat(" ", share))
				continue
			}
			r.out.WriteString(repeatToWidth(p.text, share))
		}
	}
	r.out.WriteByte('\n')
}

// repeatToWidth tiles unit until exactly cells characters are produced.
func repeatToWidth(unit string, cells int) string {
	runes := []rune(unit)
	var sb strings.Builder
	for i := 0; i < cells; i++ {
		sb.WriteRune(runes[i%len(runes)])
	}
	return sb.String()
}
