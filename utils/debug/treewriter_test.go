package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "root: %d", 2)
	tw.Line(1, "child[%s]", "a")
	tw.TextBlock(2, "text", "line\nbreak")
	tw.TextBlock(1, "empty", "")

	got := tw.String()
	want := "root: 2\n" +
		"  child[a]\n" +
		"    text: \"line\\nbreak\"\n" +
		"  empty: \n"
	if got != want {
		t.Errorf("TreeWriter output = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("dump must end with newline")
	}
}
