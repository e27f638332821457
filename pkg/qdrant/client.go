package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithAPIKey sets the api-key header sent on every request.
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK, http.StatusCreated)
}

// DeleteCollection drops a collection. A missing collection is not an error.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, name)
	return c.do(ctx, http.MethodDelete, url, nil, nil, http.StatusOK, http.StatusNotFound)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK)
}

// SearchPoints performs nearest-neighbour search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collectionName)

	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, url string, in, out interface{}, okStatus ...int) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	ok := false
	for _, s := range okStatus {
		if resp.StatusCode == s {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
