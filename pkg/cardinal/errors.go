package cardinal

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrInvalidAttribute = errors.New("invalid attribute")
	ErrDuplicateName    = errors.New("duplicate cardinal name")
)

// EntityError identifies the record that made a store construction fail.
type EntityError struct {
	Op    string // e.g. "NewStore"
	Row   int    // zero-based position in the input
	Name  string // cardinal name, if known
	Field string // offending attribute
	Cause error
}

func (e *EntityError) Error() string {
	who := fmt.Sprintf("row %d", e.Row)
	if e.Name != "" {
		who = fmt.Sprintf("row %d (%q)", e.Row, e.Name)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s field %s: %v", e.Op, who, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, who, e.Cause)
}

func (e *EntityError) Unwrap() error {
	return e.Cause
}
