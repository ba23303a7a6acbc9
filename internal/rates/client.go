package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FallbackUSDRate is the fixed NGN→USD conversion used whenever the live
// lookup is unavailable. Pricing never aborts on a rate failure.
const FallbackUSDRate = 0.0025

// Client fetches the NGN→USD rate from the exchange-rate provider. One
// attempt per call, bounded by the configured timeout; callers substitute
// FallbackUSDRate on any error.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ratesPayload struct {
	Rates struct {
		USD float64 `json:"USD"`
	} `json:"rates"`
}

// USDRate returns the current NGN→USD rate. Network faults, non-2xx
// responses, malformed bodies and missing or non-positive rates are all
// reported as errors.
func (c *Client) USDRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode rate response: %w", err)
	}
	if payload.Rates.USD <= 0 {
		return 0, fmt.Errorf("rate provider returned no USD rate")
	}

	return payload.Rates.USD, nil
}
