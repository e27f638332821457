package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3" // 1024 dimensions
	DefaultTimeout = 30 * time.Second
)

// Client is the Voyage AI embedding API client.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	inputType  string
	httpClient *http.Client
}

// New creates a new Voyage AI client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("voyage API key is required")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// WithModel sets a custom model (e.g., "voyage-3", "voyage-large-2").
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// WithInputType sets the optional input_type hint ("query" or "document").
func (c *Client) WithInputType(inputType string) *Client {
	c.inputType = inputType
	return c
}

// WithBaseURL overrides the default Voyage API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Model returns the embedding model name sent with every request.
func (c *Client) Model() string {
	return c.model
}

// Embed generates embeddings for the given texts, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	reqBody := EmbedRequest{
		Input:     texts,
		Model:     c.model,
		InputType: c.inputType,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create HTTP request
	url := fmt.Sprintf("%s/embeddings", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	// Execute request
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.message() != "" {
			return nil, fmt.Errorf("voyage API error (%d): %s", resp.StatusCode, apiErr.message())
		}
		return nil, fmt.Errorf("voyage API error: %d", resp.StatusCode)
	}

	// Parse response
	var embedResp EmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(embedResp.Data) != len(texts) {
		return nil, fmt.Errorf("voyage API returned %d embeddings for %d texts", len(embedResp.Data), len(texts))
	}

	// Data carries its own index; order by it rather than trusting array order.
	embeddings := make([][]float32, len(texts))
	for _, data := range embedResp.Data {
		if data.Index < 0 || data.Index >= len(texts) {
			return nil, fmt.Errorf("voyage API returned out-of-range index %d", data.Index)
		}
		embeddings[data.Index] = data.Embedding
	}

	return embeddings, nil
}
