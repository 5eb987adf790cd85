package outline

import "fmt"

// NotOutlinableError reports a query match whose element kind cannot appear
// in an outline. This is a configuration problem (a selector picked the wrong
// kind), so it aborts the whole build instead of skipping the entry.
type NotOutlinableError struct {
	ElemKind string
}

func (e *NotOutlinableError) Error() string {
	return fmt.Sprintf("cannot outline %s", e.ElemKind)
}

// IndentFuncError reports a caller-supplied indentation callback returning
// something that is not content.
type IndentFuncError struct {
	Returned any
}

func (e *IndentFuncError) Error() string {
	return fmt.Sprintf("indent function must return content, got %T", e.Returned)
}
