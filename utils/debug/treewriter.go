// Package debug implements helpers for producing readable tree dumps of
// internal structures during troubleshooting.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented, line-oriented dump.
type TreeWriter struct {
	sb     strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{indent: "  "}
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// Line writes a formatted line at the given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.sb.WriteString(tw.indent)
	}
	fmt.Fprintf(&tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

// TextBlock writes a labeled, quoted text value at the given depth. Quoting
// keeps control characters visible in dumps.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	for range depth {
		tw.sb.WriteString(tw.indent)
	}
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	if value != "" {
		tw.sb.WriteString(strconv.Quote(value))
	}
	tw.sb.WriteByte('\n')
}
