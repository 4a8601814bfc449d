package relay

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// User-facing error messages
const (
	msgInvalidBody      = "Invalid request body"
	msgKeyNotConfigured = "OpenAI API key not configured"
	msgParseFailure     = "Failed to parse AI response. Please try again."
	msgEnhanceFailure   = "Failed to enhance card"
	msgPromptFailure    = "Failed to generate prompt"
)

type errorResponse struct {
	Error string `json:"error"`
}

type enhanceCardRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TemplateType string `json:"templateType"`
	APIKey       string `json:"apiKey"`
}

type enhanceCardResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type generatePromptRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Attachments int    `json:"attachments"`
	Comments    int    `json:"comments"`
	Assignee    string `json:"assignee"`
	APIKey      string `json:"apiKey"`
}

type generatePromptResponse struct {
	Prompt string `json:"prompt"`
}

func (s *Server) enhanceCard(c echo.Context) error {
	s.metrics.EnhanceRequests.Add(1)
	s.metrics.InFlight.Add(1)
	defer s.metrics.InFlight.Add(-1)

	var req enhanceCardRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.RejectedRequests.Add(1)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
	}

	enhanced, err := s.assistant.Enhance(c.Request().Context(), s.keyFor(req.APIKey), ai.EnhanceRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    ai.Category(req.TemplateType),
	})
	if err != nil {
		return s.fail(c, err, msgEnhanceFailure)
	}

	return c.JSON(http.StatusOK, enhanceCardResponse(enhanced))
}

func (s *Server) generatePrompt(c echo.Context) error {
	s.metrics.PromptRequests.Add(1)
	s.metrics.InFlight.Add(1)
	defer s.metrics.InFlight.Add(-1)

	var req generatePromptRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.RejectedRequests.Add(1)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
	}

	apiKey := s.keyFor(req.APIKey)
	if apiKey == "" {
		s.metrics.RejectedRequests.Add(1)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgKeyNotConfigured})
	}

	prompt, err := s.assistant.GeneratePrompt(c.Request().Context(), apiKey, ai.PromptRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    types.Priority(req.Priority),
		Attachments: req.Attachments,
		Comments:    req.Comments,
		Assignee:    req.Assignee,
	})
	if err != nil {
		return s.fail(c, err, msgPromptFailure)
	}

	return c.JSON(http.StatusOK, generatePromptResponse{Prompt: prompt})
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.GetSnapshot())
}

// keyFor prefers the credential sent with the request over the configured one
func (s *Server) keyFor(requestKey string) string {
	if key := strings.TrimSpace(requestKey); key != "" {
		return key
	}
	return s.apiKey
}

// fail translates an assistant error into the uniform error payload
func (s *Server) fail(c echo.Context, err error, fallback string) error {
	var upstream *ai.UpstreamError
	switch {
	case errors.Is(err, models.ErrValidation):
		s.metrics.RejectedRequests.Add(1)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &upstream):
		s.metrics.UpstreamFailures.Add(1)
		status := upstream.Status
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		return c.JSON(status, errorResponse{Error: "OpenAI API Error: " + upstream.Message})
	case errors.Is(err, ai.ErrMalformedResponse):
		s.metrics.ParseFailures.Add(1)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgParseFailure})
	default:
		s.logger.Error("relay request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
	}
}
