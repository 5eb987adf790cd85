package document

import (
	"context"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/counter"
)

// LoadXML parses a sectioned XML document into a content tree. The expected
// shape is a <document> root holding nested <section> elements, each with an
// optional <title>, free <p> paragraphs, <figure kind="..." caption="..."/>
// floats and explicit <pagebreak/> marks. Section nesting depth becomes the
// heading level.
func LoadXML(ctx context.Context, r io.Reader, opts LoadOptions, log *zap.Logger) (content.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	// old documents often come in legacy encodings, be permissive
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read XML: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "document" {
		return nil, fmt.Errorf("unexpected XML root, want <document>")
	}

	headingPat, figurePat, err := opts.patterns()
	if err != nil {
		return nil, err
	}

	l := &xmlLoader{
		headingPat: headingPat,
		figurePat:  figurePat,
		labels:     map[string]int{},
		log:        log,
	}
	nodes := l.children(root, 0)

	log.Debug("XML loaded",
		zap.Int("headings", l.headings),
		zap.Int("figures", l.figures))
	return content.Seq(nodes...), nil
}

type xmlLoader struct {
	headingPat *counter.Pattern
	figurePat  *counter.Pattern
	labels     map[string]int
	headings   int
	figures    int
	log        *zap.Logger
}

func (l *xmlLoader) children(el *etree.Element, depth int) []content.Node {
	var nodes []content.Node
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "section":
			nodes = append(nodes, l.section(child, depth+1)...)
		case "title":
			// handled by section
		case "p":
			if txt := child.Text(); txt != "" {
				nodes = append(nodes, &content.Text{Text: txt}, &content.Parbreak{})
			}
		case "figure":
			nodes = append(nodes, l.figure(child))
		case "pagebreak":
			nodes = append(nodes, &content.Pagebreak{})
		default:
			l.log.Debug("Skipping unknown XML element", zap.String("tag", child.Tag))
		}
	}
	return nodes
}

func (l *xmlLoader) section(el *etree.Element, depth int) []content.Node {
	var nodes []content.Node
	if title := el.SelectElement("title"); title != nil && title.Text() != "" {
		l.headings++
		nodes = append(nodes, &content.Heading{
			Level:     depth,
			Body:      &content.Text{Text: title.Text()},
			Label:     l.label(el.SelectAttrValue("id", ""), title.Text()),
			Numbering: l.headingPat,
			Outlined:  el.SelectAttrValue("outlined", "true") != "false",
		})
	} else {
		// grouping section without title contributes no heading, its
		// children keep the enclosing level
		depth--
	}
	return append(nodes, l.children(el, depth)...)
}

func (l *xmlLoader) figure(el *etree.Element) *content.Figure {
	caption := el.SelectAttrValue("caption", "")
	fig := &content.Figure{
		FigKind:    el.SelectAttrValue("kind", "image"),
		Supplement: el.SelectAttrValue("supplement", ""),
		Numbering:  l.figurePat,
		Label:      l.label(el.SelectAttrValue("id", ""), caption),
	}
	if caption != "" {
		fig.Caption = &content.Text{Text: caption}
	}
	l.figures++
	return fig
}

func (l *xmlLoader) label(id, title string) string {
	if id != "" {
		return id
	}
	return newLabel(l.labels, title)
}
