package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/zyoshoka/typst/config"
	"github.com/zyoshoka/typst/state"
)

const sampleMarkdown = `# Introduction

Some prose.

## Background

---

# Methods
`

const sampleXML = `<?xml version="1.0"?>
<document>
  <section><title>Overview</title></section>
</document>
`

func testEnv(t *testing.T, fmt config.InputFmt) (context.Context, *zap.Logger) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = &config.Config{
		Version: 1,
		Document: config.DocumentConfig{
			Language:         "en",
			HeadingNumbering: "1.1.",
		},
		Outline: config.OutlineConfig{
			Width:  40,
			Indent: config.IndentConfig{Mode: "auto"},
		},
	}
	env.Log = zaptest.NewLogger(t)
	env.InputFmt = fmt
	return ctx, env.Log
}

func writeSource(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("unable to write source: %v", err)
	}
	return path
}

func TestProcess_MarkdownToFile(t *testing.T) {
	ctx, log := testEnv(t, config.InputFmtMarkdown)
	src := writeSource(t, "sample.md", sampleMarkdown)
	dst := filepath.Join(t.TempDir(), "toc.txt")

	if err := process(ctx, src, dst, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Contents", "1. Introduction", "1.1. Background", "2. Methods"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProcess_DirectoryDestination(t *testing.T) {
	ctx, log := testEnv(t, config.InputFmtMarkdown)
	src := writeSource(t, "sample.md", sampleMarkdown)
	dstDir := t.TempDir()

	if err := process(ctx, src, dstDir, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "sample-toc.txt")); err != nil {
		t.Errorf("derived output name not used: %v", err)
	}
}

func TestProcess_RefusesOverwrite(t *testing.T) {
	ctx, log := testEnv(t, config.InputFmtMarkdown)
	src := writeSource(t, "sample.md", sampleMarkdown)
	dst := filepath.Join(t.TempDir(), "toc.txt")
	if err := os.WriteFile(dst, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := process(ctx, src, dst, log); err == nil {
		t.Error("process() overwrote existing destination")
	}

	state.EnvFromContext(ctx).Overwrite = true
	if err := process(ctx, src, dst, log); err != nil {
		t.Errorf("process() with overwrite error = %v", err)
	}
}

func TestProcess_XML(t *testing.T) {
	ctx, log := testEnv(t, config.InputFmtXML)
	src := writeSource(t, "sample.xml", sampleXML)
	dst := filepath.Join(t.TempDir(), "toc.txt")

	if err := process(ctx, src, dst, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "Overview") {
		t.Errorf("output missing entry:\n%s", data)
	}
}

func TestProcess_MissingSource(t *testing.T) {
	ctx, log := testEnv(t, config.InputFmtMarkdown)
	if err := process(ctx, filepath.Join(t.TempDir(), "absent.md"), "", log); err == nil {
		t.Error("process() accepted missing source")
	}
}
