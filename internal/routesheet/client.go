package routesheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"indgo_crew/internal/models"
)

// maxBackoff caps the delay between fetch attempts
const maxBackoff = 30 * time.Second

// Client downloads and parses the route sheet
type Client struct {
	url          string
	httpClient   *http.Client
	maxRetries   int // 0 means a single attempt
	retryBackoff time.Duration
}

func NewClient(url string, timeout time.Duration, maxRetries int) *Client {
	return &Client{
		url:          url,
		httpClient:   &http.Client{Timeout: timeout},
		maxRetries:   maxRetries,
		retryBackoff: 1 * time.Second,
	}
}

// Fetch downloads the sheet, retrying with exponential backoff (1s, 2s, 4s ... max 30s)
func (c *Client) Fetch(ctx context.Context) ([]models.Route, error) {
	backoff := c.retryBackoff
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("Failed to fetch route sheet, retrying",
				"url", c.url,
				"retry", attempt,
				"backoff", backoff,
				"error", lastErr,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		routes, err := c.fetchOnce(ctx)
		if err == nil {
			return routes, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	return nil, fmt.Errorf("route sheet unavailable after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) ([]models.Route, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status fetching %s: %s", c.url, resp.Status)
	}

	return Parse(resp.Body)
}
