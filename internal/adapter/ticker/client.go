// Package ticker fetches BTC prices from a JSON ticker endpoint.
package ticker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
)

const maxBodyBytes = 1 << 20

// quote is one currency entry of the ticker response:
//
//	{"USD": {"last": 61234.5, "symbol": "$"}, "EUR": {...}}
type quote struct {
	Last   float64 `json:"last"`
	Symbol string  `json:"symbol"`
}

// Client implements ports.TickerClient.
type Client struct {
	http ports.HTTPClient
	url  string
}

func NewClient(httpClient ports.HTTPClient, url string) *Client {
	return &Client{http: httpClient, url: url}
}

// FetchRate returns the last BTC price in fiat.
func (c *Client) FetchRate(ctx context.Context, fiat domain.Fiat) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("ticker: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ticker: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("ticker: unexpected status %d", resp.StatusCode)
	}

	var quotes map[string]quote
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&quotes); err != nil {
		return 0, fmt.Errorf("ticker: decode response: %w", err)
	}

	q, ok := quotes[strings.ToUpper(fiat.String())]
	if !ok {
		return 0, fmt.Errorf("ticker: no quote for %s", fiat)
	}
	if q.Last <= 0 {
		return 0, fmt.Errorf("ticker: invalid %s price %v", fiat, q.Last)
	}
	return q.Last, nil
}
