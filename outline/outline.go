// Package outline generates navigable listings - tables of contents, lists
// of figures - by querying an elaborated document view, reconstructing entry
// hierarchy from the match stream and rendering one linked line per entry
// with a resolved page label.
//
// A build is a pure function of its options and the document view: it only
// reads counters and queries, keeps no state between invocations and may be
// re-run while the enclosing driver iterates page numbers to a fixed point.
// Any failed lookup aborts the build, a partial table of contents is worse
// than none.
package outline

import (
	"go.uber.org/zap"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/counter"
)

// Outlinable is the capability an element kind must satisfy to appear in an
// outline: a nesting level, an entry body (nil body means the element is
// skipped, e.g. a figure without a caption) and counter/numbering access used
// by automatic indentation.
type Outlinable interface {
	content.Locatable
	OutlineLevel() int
	OutlineBody(view content.Introspector) (content.Node, error)
	OutlineCounter() counter.Key
	OutlineNumbering() *counter.Pattern
}

type titleMode int

const (
	titleAuto titleMode = iota
	titleNone
	titleCustom
)

// Title selects the outline header. The zero value resolves to a localized
// default such as "Contents".
type Title struct {
	mode titleMode
	body content.Node
}

func AutoTitle() Title { return Title{} }

func NoTitle() Title { return Title{mode: titleNone} }

func CustomTitle(body content.Node) Title { return Title{mode: titleCustom, body: body} }

func (t Title) resolve(lang string) content.Node {
	switch t.mode {
	case titleNone:
		return nil
	case titleCustom:
		return t.body
	default:
		return &content.Text{Text: localizedTitle(lang)}
	}
}

// Options configures one outline build. The zero value produces a table of
// contents of all outlined headings with a localized title, unlimited depth,
// no indentation and dotted leaders.
type Options struct {
	Title  Title
	Target content.Selector // nil selects outlined headings
	Depth  int              // maximum included nesting level, 0 = unlimited
	Indent Indent
	Fill   content.Node // leader between entry and page label, nil = dotted
	NoFill bool         // no leader at all, elastic blank space instead
	Lang   string       // BCP 47 tag localizing the automatic title
}

// arabicFallback displays page labels when the document defines no page
// numbering at an entry's location.
var arabicFallback = counter.MustPattern("1")

// Build assembles the outline listing against a settled document view. The
// result is a finalized content sequence ready for the rendering pipeline;
// on any error nothing is returned.
func Build(opts Options, view content.Introspector, log *zap.Logger) (content.Node, error) {
	if opts.Indent.legacy {
		log.Warn("Boolean outline indentation is deprecated, use none or auto",
			zap.Bool("value", opts.Indent.kind == IndentAuto))
	}

	seq := []content.Node{&content.Parbreak{}}

	if title := opts.Title.resolve(opts.Lang); title != nil {
		// The outline's own heading must never be picked up by an outline
		// query, not even by a nested one, so it carries no numbering and is
		// not outlined. This breaks the recursive-inclusion cycle at the
		// source.
		seq = append(seq, &content.Heading{
			Level:    1,
			Body:     title,
			Outlined: false,
		})
	}

	target := opts.Target
	if target == nil {
		target = content.OutlinedHeadings()
	}

	matches := view.Query(target)
	log.Debug("Outline query finished", zap.Int("matches", len(matches)))

	var chain ancestors
	for _, elem := range matches {
		out, ok := elem.(Outlinable)
		if !ok {
			return nil, &NotOutlinableError{ElemKind: elem.Kind()}
		}

		// Depth-excluded elements contribute no ancestor context either,
		// they are dropped before the chain ever sees them.
		if opts.Depth > 0 && out.OutlineLevel() > opts.Depth {
			continue
		}

		body, err := out.OutlineBody(view)
		if err != nil {
			return nil, err
		}
		if body == nil {
			continue
		}

		loc := out.Location()

		chain.admit(out.OutlineLevel())

		if err := opts.Indent.apply(view, chain, &seq); err != nil {
			return nil, err
		}

		seq = append(seq, &content.Link{Body: body, Target: loc})

		if opts.NoFill {
			seq = append(seq, &content.Spacer{Fr: 1})
		} else {
			fill := opts.Fill
			if fill == nil {
				fill = &content.Repeat{Body: &content.Text{Text: "."}}
			}
			seq = append(seq,
				&content.Space{},
				&content.Box{Body: fill, FrWidth: 1},
				&content.Space{},
			)
		}

		page, err := pageLabel(view, loc)
		if err != nil {
			return nil, err
		}
		seq = append(seq,
			&content.Link{Body: page, Target: loc},
			&content.Linebreak{},
		)

		chain.push(out, loc)
	}

	seq = append(seq, &content.Parbreak{})

	return finalize(content.Seq(seq...)), nil
}

// pageLabel resolves the page counter at loc and formats it under the page
// numbering active there, falling back to plain arabic numerals.
func pageLabel(view content.Introspector, loc content.Location) (content.Node, error) {
	pattern, err := view.PageNumberingAt(loc)
	if err != nil {
		return nil, err
	}
	if pattern == nil {
		pattern = arabicFallback
	}
	values, err := view.CounterAt(counter.KeyPage, loc)
	if err != nil {
		return nil, err
	}
	return &content.Text{Text: pattern.Format(values...)}, nil
}

// finalize overlays the whole produced listing so that nothing inside it -
// the rendered heading labels are inert copies, not document structure - can
// be matched as outlined or numbered by a later or nested pass.
func finalize(produced content.Node) content.Node {
	off := false
	return &content.Styled{
		Body: produced,
		Props: content.Props{
			Outlined:  &off,
			Numbering: &content.Numbering{},
		},
	}
}
