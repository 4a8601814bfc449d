package task

import "github.com/thenoetrevino/lanes/internal/models"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = models.NewValidationError("title cannot be empty")
	ErrTitleTooLong    = models.NewValidationError("title cannot exceed 255 characters")
	ErrEmptyTaskID     = models.NewValidationError("task ID cannot be empty")
	ErrInvalidPriority = models.NewValidationError("priority must be one of: low, medium, high")
	ErrInvalidCounter  = models.NewValidationError("attachments and comments cannot be negative")
	ErrEmptyPrompt     = models.NewValidationError("generated prompt cannot be empty")

	// Lookup errors
	ErrTaskNotFound   = models.ErrTaskNotFound
	ErrColumnNotFound = models.ErrColumnNotFound
)
