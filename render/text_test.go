package render

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/zyoshoka/typst/content"
	"github.com/zyoshoka/typst/document"
	"github.com/zyoshoka/typst/outline"
)

func TestText_Leader(t *testing.T) {
	n := content.Seq(
		&content.Text{Text: "A"},
		&content.Space{},
		&content.Box{Body: &content.Repeat{Body: &content.Text{Text: "."}}, FrWidth: 1},
		&content.Space{},
		&content.Text{Text: "9"},
	)
	if got := Text(n, 10); got != "A ...... 9\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestText_HideReservesWidth(t *testing.T) {
	n := content.Seq(
		&content.Hide{Body: &content.Text{Text: "1."}},
		&content.Space{},
		&content.Text{Text: "X"},
	)
	if got := Text(n, 20); got != "   X\n" {
		t.Errorf("Text() = %q, hidden fragment must become blanks", got)
	}
}

func TestText_ElasticGap(t *testing.T) {
	n := content.Seq(
		&content.Text{Text: "A"},
		&content.Spacer{Fr: 1},
		&content.Text{Text: "B"},
	)
	if got := Text(n, 5); got != "A   B\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestText_FixedSpacer(t *testing.T) {
	n := content.Seq(&content.Spacer{Em: 2}, &content.Text{Text: "x"})
	if got := Text(n, 10); got != "  x\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestText_MultipleElasticSplitEvenly(t *testing.T) {
	n := content.Seq(
		&content.Text{Text: "ab"},
		&content.Spacer{Fr: 1},
		&content.Text{Text: "cd"},
		&content.Spacer{Fr: 1},
		&content.Text{Text: "ef"},
	)
	if got := Text(n, 10); got != "ab  cd  ef\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestText_OverfullLineKeepsMinimumGap(t *testing.T) {
	n := content.Seq(
		&content.Text{Text: "long entry text"},
		&content.Spacer{Fr: 1},
		&content.Text{Text: "42"},
	)
	if got := Text(n, 10); got != "long entry text 42\n" {
		t.Errorf("Text() = %q, elastic piece must keep one cell", got)
	}
}

func TestText_WidthFallback(t *testing.T) {
	if got := Text(&content.Text{Text: "hi"}, 0); got != "hi\n" {
		t.Errorf("Text() = %q", got)
	}
}

const integrationMarkdown = `# Introduction

## Background

---

# Methods
`

// The full pipeline: parse, elaborate, build the table of contents and lay it
// out as monospaced text.
func TestText_OutlineEndToEnd(t *testing.T) {
	log := zaptest.NewLogger(t)

	root, err := document.LoadMarkdown(context.Background(),
		strings.NewReader(integrationMarkdown),
		document.LoadOptions{HeadingNumbering: "1.1."}, log)
	if err != nil {
		t.Fatalf("LoadMarkdown() error = %v", err)
	}

	view, err := document.Compile(context.Background(), root, document.CompileOptions{}, log)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	toc, err := outline.Build(outline.Options{Indent: outline.AutoIndent()}, view, log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := strings.Join([]string{
		"",
		"Contents",
		"",
		"1. Introduction ............ 1",
		"    1.1. Background ........ 1",
		"2. Methods ................. 2",
		"",
	}, "\n")
	if got := Text(toc, 30); got != want {
		t.Errorf("rendered outline:\n%s\nwant:\n%s", got, want)
	}
}
