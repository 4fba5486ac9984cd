package realtime

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/transit-vis/journeymap/config"
)

// Client is a simple HTTP client for fetching GTFS-RT protobuf data
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new GTFS-RT HTTP client
func NewClient(cfg config.RealtimeConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Fetch fetches a GTFS-RT feed from a URL and returns raw protobuf bytes.
// Returns nil if url is empty (allows the overlay to stay optional).
func (c *Client) Fetch(url string) ([]byte, error) {
	if url == "" {
		return nil, nil
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
