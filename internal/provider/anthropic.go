// Package provider implements the model-completion and embedding
// collaborators over their HTTP APIs. Failures surface as *Error; the
// engine treats them as opaque and non-retryable — retry policy belongs to
// the caller.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"

	// DefaultModel is used when the caller does not pick one.
	DefaultModel = "claude-3-5-sonnet-20241022"
)

// Error is a provider failure: transport, HTTP status, or empty output.
type Error struct {
	Status  int // 0 for transport-level failures
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider: %s (status %d)", e.Message, e.Status)
	}
	return "provider: " + e.Message
}

// Config holds client settings. Zero values fall back to defaults and the
// conventional environment variables.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

// NewAnthropicClient builds a client, reading the API key from the
// environment when the config leaves it empty.
func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(AnthropicKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required (set %s)", AnthropicKeyEnv)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicAPIURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	return &AnthropicClient{
		apiKey:    apiKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		model:     model,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Model returns the model this client targets.
func (c *AnthropicClient) Model() string { return c.model }

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the composed prompt pair and returns the model's text.
// An empty completion is an error: downstream parsing requires structured
// output, and silence from the model is a failed generation.
func (c *AnthropicClient) Complete(ctx context.Context, systemText, userText string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemText,
		Messages:  []anthropicMessage{{Role: "user", Content: userText}},
	})
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("encoding request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("building request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("reading response: %v", err)}
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &Error{Status: resp.StatusCode, Message: "malformed response body"}
	}

	if resp.StatusCode != http.StatusOK {
		msg := "completion request rejected"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &Error{Status: resp.StatusCode, Message: msg}
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", &Error{Status: resp.StatusCode, Message: "model returned an empty completion"}
	}
	return text.String(), nil
}
