package models

import "errors"

// Error kinds shared by every layer. Concrete errors wrap one of these so
// callers can branch with errors.Is without knowing which package raised them.
var (
	// ErrNotFound indicates a referenced task or column does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing, empty or out-of-range field
	ErrValidation = errors.New("validation failed")
)

// kindError is a sentinel error that belongs to one of the error kinds above
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewNotFoundError returns a sentinel error of the NotFound kind
func NewNotFoundError(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// NewValidationError returns a sentinel error of the Validation kind
func NewValidationError(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

var (
	// ErrTaskNotFound indicates the task id is not on the board
	ErrTaskNotFound = NewNotFoundError("task not found")

	// ErrColumnNotFound indicates the column id is not on the board
	ErrColumnNotFound = NewNotFoundError("column not found")

	// ErrInvariant indicates a board document breaks a structural invariant
	ErrInvariant = NewValidationError("board invariant violated")
)
