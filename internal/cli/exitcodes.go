package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/persistence"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Store errors, network errors, upstream AI failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid import files, a corrupted stored board, unusable AI output.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid priority or color values, negative counters.
	ExitValidation = 5
)

// CommandError carries the process exit code a failed command should produce.
// The message has already been reported through the OutputFormatter.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Classify maps an error to its exit code and a stable machine-readable code
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return ExitNotFound, "TASK_NOT_FOUND"
	case errors.Is(err, models.ErrColumnNotFound):
		return ExitNotFound, "COLUMN_NOT_FOUND"
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound, "NOT_FOUND"
	case errors.Is(err, persistence.ErrParse):
		return ExitDataErr, "PARSE_ERROR"
	case errors.Is(err, ai.ErrMalformedResponse):
		return ExitDataErr, "AI_RESPONSE_ERROR"
	case errors.Is(err, models.ErrValidation):
		return ExitValidation, "VALIDATION_ERROR"
	}

	var upstream *ai.UpstreamError
	if errors.As(err, &upstream) {
		return ExitError, "UPSTREAM_ERROR"
	}
	return ExitError, "ERROR"
}
