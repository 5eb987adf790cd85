package document

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/counter"
)

// LoadOptions configures structure extraction from a source document.
type LoadOptions struct {
	// HeadingNumbering is the numbering pattern assigned to every heading.
	// Empty leaves headings unnumbered.
	HeadingNumbering string
	// FigureNumbering is the numbering pattern for figures, "1" when empty.
	FigureNumbering string
}

func (o LoadOptions) patterns() (heading, figure *counter.Pattern, err error) {
	if o.HeadingNumbering != "" {
		if heading, err = counter.ParsePattern(o.HeadingNumbering); err != nil {
			return nil, nil, fmt.Errorf("unable to parse heading numbering: %w", err)
		}
	}
	figureSrc := o.FigureNumbering
	if figureSrc == "" {
		figureSrc = "1"
	}
	if figure, err = counter.ParsePattern(figureSrc); err != nil {
		return nil, nil, fmt.Errorf("unable to parse figure numbering: %w", err)
	}
	return heading, figure, nil
}

// LoadMarkdown parses Markdown into a content tree: headings become outlined
// heading elements, images become figures captioned by their title or alt
// text, thematic breaks become page breaks.
func LoadMarkdown(ctx context.Context, r io.Reader, opts LoadOptions, log *zap.Logger) (content.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read markdown: %w", err)
	}

	headingPat, figurePat, err := opts.patterns()
	if err != nil {
		return nil, err
	}

	root := goldmark.New().Parser().Parse(text.NewReader(src))

	l := &mdLoader{
		src:        src,
		headingPat: headingPat,
		figurePat:  figurePat,
		labels:     map[string]int{},
		log:        log,
	}
	for block := root.FirstChild(); block != nil; block = block.NextSibling() {
		l.block(block)
	}

	log.Debug("Markdown loaded",
		zap.Int("headings", l.headings),
		zap.Int("figures", l.figures))
	return content.Seq(l.nodes...), nil
}

type mdLoader struct {
	src        []byte
	nodes      []content.Node
	headingPat *counter.Pattern
	figurePat  *counter.Pattern
	labels     map[string]int
	headings   int
	figures    int
	log        *zap.Logger
}

func (l *mdLoader) block(n ast.Node) {
	switch t := n.(type) {
	case *ast.Heading:
		title := l.textOf(t)
		l.headings++
		l.nodes = append(l.nodes, &content.Heading{
			Level:     t.Level,
			Body:      &content.Text{Text: title},
			Label:     l.label(title),
			Numbering: l.headingPat,
			Outlined:  true,
		})
	case *ast.ThematicBreak:
		l.nodes = append(l.nodes, &content.Pagebreak{})
	case *ast.Paragraph, *ast.TextBlock:
		l.inline(n)
		l.nodes = append(l.nodes, &content.Parbreak{})
	default:
		// lists, quotes and code carry no outline structure, keep their
		// text so pagination stays plausible
		if txt := l.textOf(n); txt != "" {
			l.nodes = append(l.nodes, &content.Text{Text: txt}, &content.Parbreak{})
		}
	}
}

// inline walks a paragraph's children, lifting images out as figures and
// keeping the rest as plain text.
func (l *mdLoader) inline(n ast.Node) {
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			l.nodes = append(l.nodes, &content.Text{Text: sb.String()})
			sb.Reset()
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if img, ok := c.(*ast.Image); ok {
			flush()
			l.figure(img)
			continue
		}
		sb.WriteString(l.textOf(c))
	}
	flush()
}

func (l *mdLoader) figure(img *ast.Image) {
	caption := string(img.Title)
	if caption == "" {
		caption = l.textOf(img) // alt text
	}

	fig := &content.Figure{
		FigKind:   "image",
		Numbering: l.figurePat,
		Label:     l.label(caption),
	}
	if caption != "" {
		fig.Caption = &content.Text{Text: caption}
	} else {
		l.log.Debug("Figure without caption, it will not be listed",
			zap.String("destination", string(img.Destination)))
	}
	l.figures++
	l.nodes = append(l.nodes, fig)
}

func (l *mdLoader) textOf(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(l.src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func (l *mdLoader) label(title string) string {
	return newLabel(l.labels, title)
}

// newLabel derives a unique anchor for an element from its text, shared by
// all loaders.
func newLabel(seen map[string]int, title string) string {
	base := slug.Make(title)
	if base == "" {
		base = uuid.NewString()
	}
	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}
