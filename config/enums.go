package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Specification of what an outline lists.
type OutlineTarget int

const (
	OutlineTargetHeadings OutlineTarget = iota
	OutlineTargetFigures
)

var outlineTargetNames = []string{"headings", "figures"}

func OutlineTargetNames() []string {
	return append([]string{}, outlineTargetNames...)
}

func (t OutlineTarget) IsValid() bool {
	return t >= 0 && int(t) < len(outlineTargetNames)
}

func (t OutlineTarget) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("OutlineTarget(%d)", int(t))
	}
	return outlineTargetNames[t]
}

func ParseOutlineTarget(name string) (OutlineTarget, error) {
	for i, n := range outlineTargetNames {
		if strings.EqualFold(name, n) {
			return OutlineTarget(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid outline target, should be one of: %s",
		name, strings.Join(outlineTargetNames, ", "))
}

func (t OutlineTarget) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid outline target: %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *OutlineTarget) UnmarshalText(text []byte) error {
	v, err := ParseOutlineTarget(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Specification of the source document format.
type InputFmt int

const (
	InputFmtMarkdown InputFmt = iota
	InputFmtXML
)

var inputFmtNames = []string{"markdown", "xml"}

func InputFmtNames() []string {
	return append([]string{}, inputFmtNames...)
}

func (f InputFmt) IsValid() bool {
	return f >= 0 && int(f) < len(inputFmtNames)
}

func (f InputFmt) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("InputFmt(%d)", int(f))
	}
	return inputFmtNames[f]
}

func ParseInputFmt(name string) (InputFmt, error) {
	for i, n := range inputFmtNames {
		if strings.EqualFold(name, n) {
			return InputFmt(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid input format, should be one of: %s",
		name, strings.Join(inputFmtNames, ", "))
}

// DetectInputFmt guesses the source format from the file extension.
func DetectInputFmt(path string) (InputFmt, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return InputFmtMarkdown, nil
	case ".xml":
		return InputFmtXML, nil
	default:
		return 0, fmt.Errorf("unable to detect input format of %q", path)
	}
}
