package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	userAgent = "BoardScout/1.0 (+local)"

	// board pages with megabytes of state blob exist; anything past this
	// is not a job board
	maxBodyBytes = 8 << 20
)

type Client struct {
	hc      *http.Client
	limiter *HostLimiter
}

func NewClient(limiter *HostLimiter) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

// BoardPayloads fetches a board page and returns every embedded JSON
// document found in it, in document order. An empty slice with a nil error
// means the page had no payload we recognize; the caller treats that like
// a board with no openings.
func (c *Client) BoardPayloads(ctx context.Context, boardURL string) ([]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, boardURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, boardURL); err != nil {
			return nil, err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("board status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	return Payloads(body), nil
}
