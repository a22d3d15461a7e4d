package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned when a record child's name is absent from
// the input mapping and the child carries no default value.
var ErrMissingField = errors.New("missing field on encode")

// ErrEnumFallthrough is returned when no enum entry matched and the enum
// has no default node configured.
var ErrEnumFallthrough = errors.New("no enum entry matched")

// ErrDuplicateField is returned when a record is built with two children
// sharing a name.
var ErrDuplicateField = errors.New("duplicate field name")

// ErrUnnamedField is returned when a record child carries no name.
var ErrUnnamedField = errors.New("record child without a name")

// WindowError reports an out-of-range child index window.
type WindowError struct {
	Start, End, Len int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("child window [%d, %d) out of range for %d children", e.Start, e.End, e.Len)
}

// PathError wraps a failure with the path of child names and indices
// from the root of the composite call down to the failing node.
type PathError struct {
	Path []string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("at %s: %v", strings.Join(e.Path, "."), e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// wrapPath prepends a path segment to err, folding nested PathErrors
// into a single path so the root caller sees one chain.
func wrapPath(segment string, err error) error {
	var pe *PathError
	if errors.As(err, &pe) {
		return &PathError{Path: append([]string{segment}, pe.Path...), Err: pe.Err}
	}
	return &PathError{Path: []string{segment}, Err: err}
}
