package column

import "github.com/thenoetrevino/lanes/internal/models"

// Column-related errors
var (
	// Validation errors
	ErrEmptyTitle    = models.NewValidationError("column title cannot be empty")
	ErrTitleTooLong  = models.NewValidationError("column title cannot exceed 255 characters")
	ErrInvalidColor  = models.NewValidationError("invalid column color")
	ErrEmptyColumnID = models.NewValidationError("column ID cannot be empty")

	// Lookup errors
	ErrColumnNotFound = models.ErrColumnNotFound
)
