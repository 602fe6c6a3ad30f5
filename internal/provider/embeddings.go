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
	openAIAPIURL = "https://api.openai.com/v1"

	// DefaultEmbeddingModel matches the store format the original memory
	// files were written with.
	DefaultEmbeddingModel = "text-embedding-3-small"
)

// EmbeddingClient calls an OpenAI-compatible embeddings endpoint. It
// satisfies memory.Embedder.
type EmbeddingClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewEmbeddingClient builds an embeddings client, reading the API key from
// the environment when the config leaves it empty.
func NewEmbeddingClient(cfg Config) (*EmbeddingClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(OpenAIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("embeddings API key is required (set %s)", OpenAIKeyEnv)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIAPIURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultEmbeddingModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &EmbeddingClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Embed returns the embedding vector for text.
func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(embeddingRequest{Model: c.model, Input: text})
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("encoding request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("building request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("reading response: %v", err)}
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: "malformed response body"}
	}
	if resp.StatusCode != http.StatusOK {
		msg := "embedding request rejected"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}
	if len(parsed.Data) == 0 {
		return nil, &Error{Status: resp.StatusCode, Message: "no embedding in response"}
	}
	return parsed.Data[0].Embedding, nil
}
