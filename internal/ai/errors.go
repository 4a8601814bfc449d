package ai

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/models"
)

// Request validation errors
var (
	ErrMissingAPIKey   = models.NewValidationError("OpenAI API key is required. Please add your API key in Settings.")
	ErrMissingTitle    = models.NewValidationError("Card title is required")
	ErrMissingCategory = models.NewValidationError("Template type is required")
)

// ErrMalformedResponse is returned when the model output cannot be used
var ErrMalformedResponse = errors.New("failed to parse AI response")

// UpstreamError is a non-success answer from the LLM API
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error (%d): %s", e.Status, e.Message)
}

// retryable reports whether the request may succeed if sent again
func (e *UpstreamError) retryable() bool {
	return e.Status == 429 || e.Status >= 500
}
