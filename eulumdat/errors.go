package eulumdat

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates the input ended before a required field.
	ErrTruncated = errors.New("eulumdat: unexpected end of input")

	// ErrSyntax indicates a field that could not be parsed as the
	// required numeric type.
	ErrSyntax = errors.New("eulumdat: malformed numeric field")

	// ErrCount indicates a space-separated row with the wrong number of
	// values for the declared grid.
	ErrCount = errors.New("eulumdat: value count mismatch")
)

// ParseError reports a parse failure with its 1-based line number.
// It wraps one of the package sentinels (or a photometry shape error),
// so callers can classify it with errors.Is.
type ParseError struct {
	// Line is the 1-based input line the failure was detected on.
	Line int
	// Msg describes the field being parsed.
	Msg string
	// Err is the category sentinel.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("eulumdat: line %d: %s: %v", e.Line, e.Msg, e.Err)
}

// Unwrap exposes the category sentinel to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
