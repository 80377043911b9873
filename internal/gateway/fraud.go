package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FraudClient queries the fraud service blacklist. Any transport or parse
// failure is returned as ErrDownstreamUnavailable: an undetected-fraud outcome
// must never be silently assumed.
type FraudClient struct {
	baseURL string
	client  *http.Client
}

func NewFraudClient(baseURL string, timeout time.Duration) *FraudClient {
	return &FraudClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *FraudClient) IsBlacklisted(ctx context.Context, cardNumber string) (bool, error) {
	endpoint := fmt.Sprintf("%s/blacklisted-cards/%s", c.baseURL, url.PathEscape(cardNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build fraud check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("fraud check call: %w: %v", ErrDownstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("fraud check call: %w: status %d", ErrDownstreamUnavailable, resp.StatusCode)
	}

	// The fraud service transmits its boolean as a string.
	var payload struct {
		Blacklisted string `json:"blacklisted"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("decode fraud check response: %w: %v", ErrDownstreamUnavailable, err)
	}

	blacklisted, err := strconv.ParseBool(payload.Blacklisted)
	if err != nil {
		return false, fmt.Errorf("fraud check response blacklisted=%q: %w", payload.Blacklisted, ErrDownstreamUnavailable)
	}
	return blacklisted, nil
}
