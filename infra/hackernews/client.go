// Package hackernews adapts the two Hacker News backends — the per-item
// Firebase API and the bulk Algolia API — to the app-level interfaces.
package hackernews

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a thin HTTP wrapper for one Hacker News API host.
// Both backends are unauthenticated; it only handles base URL
// construction and response draining.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given host.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request and returns the raw body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API GET %s returned %d: %s", path, resp.StatusCode, string(data))
	}

	return data, nil
}
