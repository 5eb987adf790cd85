package outline

import (
	"github.com/zyoshoka/typst/content"
)

// IndentKind discriminates indentation strategies.
type IndentKind int

const (
	// IndentNone keeps all entries flush at the line start.
	IndentNone IndentKind = iota
	// IndentAuto aligns an entry with the end of its deepest ancestor's
	// resolved numbering.
	IndentAuto
	// IndentFixed indents by a fixed length per nesting level.
	IndentFixed
	// IndentFunction delegates to a caller-supplied callback.
	IndentFunction
)

// Fn maps a nesting depth (0 for top-level entries) to indentation content.
// The callback may return any value, mirroring user-supplied code: everything
// that is not content fails the build with IndentFuncError.
type Fn func(depth int) any

// Indent is the indentation strategy for outline entries. The zero value is
// no indentation.
type Indent struct {
	kind   IndentKind
	em     float64
	fn     Fn
	legacy bool
}

func NoIndent() Indent { return Indent{} }

func AutoIndent() Indent { return Indent{kind: IndentAuto} }

// FixedIndent indents every nesting level by em of fixed horizontal space.
func FixedIndent(em float64) Indent { return Indent{kind: IndentFixed, em: em} }

func FuncIndent(fn Fn) Indent { return Indent{kind: IndentFunction, fn: fn} }

// BoolIndent converts the legacy boolean encoding: true is AutoIndent, false
// is NoIndent.
//
// Deprecated: kept for configurations that still use booleans, logged as
// deprecated during the build.
func BoolIndent(v bool) Indent {
	in := NoIndent()
	if v {
		in = AutoIndent()
	}
	in.legacy = true
	return in
}

func (in Indent) Kind() IndentKind { return in.kind }

// apply appends the indentation fragment for one entry about to be rendered,
// given the chain of its still-open ancestors.
func (in Indent) apply(view content.Introspector, chain ancestors, seq *[]content.Node) error {
	switch in.kind {
	case IndentNone:

	case IndentAuto:
		// Concatenate the ancestors' resolved numbers inside a hidden
		// fragment: it reserves exactly the width of "1. 1.a. ..." so the
		// entry starts where the deepest ancestor's number text ends,
		// without re-displaying those numbers.
		var hidden []content.Node
		for _, anc := range chain {
			numbering := anc.out.OutlineNumbering()
			if numbering == nil {
				continue
			}
			values, err := view.CounterAt(anc.out.OutlineCounter(), anc.loc)
			if err != nil {
				return err
			}
			hidden = append(hidden, &content.Text{Text: numbering.Format(values...)}, &content.Space{})
		}
		if len(chain) > 0 {
			*seq = append(*seq, &content.Hide{Body: content.Seq(hidden...)}, &content.Space{})
		}

	case IndentFixed:
		for range chain {
			*seq = append(*seq, &content.Spacer{Em: in.em})
		}

	case IndentFunction:
		returned := in.fn(len(chain))
		if returned == nil {
			return nil
		}
		node, ok := returned.(content.Node)
		if !ok {
			return &IndentFuncError{Returned: returned}
		}
		// An empty result is suppressed entirely, including at depth 0.
		// This lets callbacks opt specific levels out of indentation and is
		// deliberate, not an accident of the empty-content representation.
		if !content.IsEmpty(node) {
			*seq = append(*seq, node)
		}
	}
	return nil
}
