package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrFeedUnavailable is returned for any network or decode failure while
// loading the feed. The caller renders the localized placeholder and
// hides pagination; there is no retry.
var ErrFeedUnavailable = errors.New("catalog: feed unavailable")

const feedTimeout = 5 * time.Second

// Client loads the demo feed from an http(s) URL or a local file path.
type Client struct {
	source string
	http   *http.Client
}

// NewClient constructs a feed client for the given source.
func NewClient(source string) *Client {
	return &Client{
		source: strings.TrimSpace(source),
		http:   &http.Client{Timeout: feedTimeout},
	}
}

// Load fetches and decodes the feed. Any failure is reported as
// ErrFeedUnavailable; Load never panics past this boundary.
func (c *Client) Load(ctx context.Context) (Feed, error) {
	if c == nil || c.source == "" {
		return Feed{}, fmt.Errorf("%w: no source configured", ErrFeedUnavailable)
	}
	raw, err := c.read(ctx)
	if err != nil {
		return Feed{}, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	var feed Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return Feed{}, fmt.Errorf("%w: decode: %v", ErrFeedUnavailable, err)
	}
	if feed.Demos == nil {
		feed.Demos = []Record{}
	}
	if feed.PerPage < 0 {
		feed.PerPage = 0
	}
	return feed, nil
}

func (c *Client) read(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(c.source, "http://") || strings.HasPrefix(c.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Cache-Control", "no-store")
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		const maxFeedBytes = 1 << 20
		return io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	}
	return os.ReadFile(c.source)
}
