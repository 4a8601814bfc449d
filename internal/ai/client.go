// Package ai talks to an OpenAI-compatible chat completions API to enhance
// cards and to turn cards into prompts for a coding assistant.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thenoetrevino/lanes/internal/types"
)

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultModel      = "gpt-4o-mini"
	defaultMaxTokens  = 1024
	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// EnhanceRequest is a card to be rewritten by the model
type EnhanceRequest struct {
	Title       string
	Description string
	Category    Category
}

// Enhancement is the rewritten title and description
type Enhancement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PromptRequest is the card context used to generate a coding-assistant prompt
type PromptRequest struct {
	Title       string
	Description string
	Priority    types.Priority
	Attachments int
	Comments    int
	Assignee    string
}

// Client calls the chat completions endpoint. It holds no board state.
type Client struct {
	baseURL    string
	model      string
	maxTokens  int
	maxRetries int
	retryDelay time.Duration
	http       *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another OpenAI-compatible server
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithModel sets the model name
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithMaxTokens caps the completion length
func WithMaxTokens(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout. A client supplied through
// WithHTTPClient is copied rather than modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			cp := *c.http
			cp.Timeout = d
			c.http = &cp
		}
	}
}

// WithRetries sets how many attempts are made for rate-limited or failing
// upstream calls and the initial backoff between them
func WithRetries(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.maxRetries = attempts
		}
		c.retryDelay = delay
	}
}

// NewClient creates a client with the given options
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		maxTokens:  defaultMaxTokens,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		http:       &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enhance asks the model for an improved title and description.
// The model must answer with exactly a JSON object holding both fields.
func (c *Client) Enhance(ctx context.Context, apiKey string, req EnhanceRequest) (Enhancement, error) {
	if strings.TrimSpace(apiKey) == "" {
		return Enhancement{}, ErrMissingAPIKey
	}
	if strings.TrimSpace(req.Title) == "" {
		return Enhancement{}, ErrMissingTitle
	}
	if strings.TrimSpace(string(req.Category)) == "" {
		return Enhancement{}, ErrMissingCategory
	}

	content, err := c.complete(ctx, apiKey, []chatMessage{
		{Role: "system", Content: SystemPrompt(req.Category)},
		{Role: "user", Content: enhanceUserPrompt(req.Title, req.Description)},
	})
	if err != nil {
		return Enhancement{}, err
	}

	enhanced, err := parseEnhancement(content)
	if err != nil {
		slog.Warn("failed to parse enhancement", "error", err, "content", content)
		return Enhancement{}, err
	}
	return enhanced, nil
}

// GeneratePrompt turns a card into a prompt for a coding assistant
func (c *Client) GeneratePrompt(ctx context.Context, apiKey string, req PromptRequest) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrMissingTitle
	}

	content, err := c.complete(ctx, apiKey, []chatMessage{
		{Role: "user", Content: generateUserPrompt(req)},
	})
	if err != nil {
		return "", err
	}

	prompt := strings.TrimSpace(content)
	if prompt == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrMalformedResponse)
	}
	return prompt, nil
}

// parseEnhancement decodes the strict two-field object the model must return
func parseEnhancement(content string) (Enhancement, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &fields); err != nil {
		return Enhancement{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	title, _ := fields["title"].(string)
	description, _ := fields["description"].(string)
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return Enhancement{}, fmt.Errorf("%w: title and description are required", ErrMalformedResponse)
	}
	return Enhancement{Title: strings.TrimSpace(title), Description: description}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete sends one chat completion request, retrying with exponential
// backoff on 429 and 5xx answers
func (c *Client) complete(ctx context.Context, apiKey string, messages []chatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := range c.maxRetries {
		if attempt > 0 {
			delay := c.retryDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		content, err := c.send(ctx, apiKey, body)
		if err == nil {
			return content, nil
		}
		lastErr = err

		var upstream *UpstreamError
		if !errors.As(err, &upstream) || !upstream.retryable() {
			return "", err
		}
		slog.Warn("retrying upstream call", "attempt", attempt+1, "status", upstream.Status)
	}
	return "", lastErr
}

func (c *Client) send(ctx context.Context, apiKey string, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request to AI provider failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(resp.StatusCode, respBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}
	return parsed.Choices[0].Message.Content, nil
}

// upstreamMessage extracts the provider's error message, falling back to the
// raw body or the status text
func upstreamMessage(status int, body []byte) string {
	var apiErr apiErrorBody
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}
