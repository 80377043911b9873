package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// TaxClient enriches a flight cost with its VAT amount. Unlike the fraud and
// payment clients it never surfaces an error: every failure of the downstream
// service (server error, empty or garbled response, reset connection) degrades
// to a zero tax amount so that an invoice can always be produced.
type TaxClient struct {
	baseURL string
	client  *http.Client
}

func NewTaxClient(baseURL string, timeout time.Duration) *TaxClient {
	return &TaxClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *TaxClient) VATFor(ctx context.Context, amount decimal.Decimal) decimal.Decimal {
	tax, err := c.lookup(ctx, amount)
	if err != nil {
		log.Printf("WARNING: tax lookup for amount %s failed, defaulting to zero: %v", amount, err)
		return decimal.Zero
	}
	return tax
}

func (c *TaxClient) lookup(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/vat?amount=%s", c.baseURL, url.QueryEscape(amount.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build vat request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("vat call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("vat call: status %d", resp.StatusCode)
	}

	var payload struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("decode vat response: %w", err)
	}
	return payload.Amount, nil
}
