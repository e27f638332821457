package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// It retries while ngrok is starting up.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string, interval time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, ngrokAPIBase+"/api/tunnels")
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt < ngrokAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	// Prefer HTTPS tunnels
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
