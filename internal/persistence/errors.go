package persistence

import (
	"errors"
	"fmt"
)

// ErrParse classifies every failure to turn a stored or imported document
// into a valid board
var ErrParse = errors.New("failed to parse board document")

// ParseError describes why a document was rejected
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrParse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrParse, e.Reason)
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(reason string, err error) *ParseError {
	return &ParseError{Reason: reason, Err: err}
}
