package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/bookingpay/internal/domain"
	"github.com/shopspring/decimal"
)

type ChargeOutcome string

const (
	ChargeOutcomeSuccess ChargeOutcome = "SUCCESS"
	ChargeOutcomeFailed  ChargeOutcome = "FAILED"
)

// ChargeResult is the gateway's business judgment on a single charge attempt.
// A declined charge is a ChargeOutcomeFailed result, not an error.
type ChargeResult struct {
	PaymentID string
	Outcome   ChargeOutcome
}

type PaymentClient struct {
	baseURL string
	client  *http.Client
}

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type paymentRequest struct {
	CreditCardNumber string      `json:"creditCardNumber"`
	CreditCardExpiry string      `json:"creditCardExpiry"`
	Amount           json.Number `json:"amount"`
}

// Charge submits exactly one payment request; it does not retry.
func (c *PaymentClient) Charge(ctx context.Context, amount decimal.Decimal, card domain.CreditCard) (*ChargeResult, error) {
	body, err := json.Marshal(paymentRequest{
		CreditCardNumber: card.Number,
		CreditCardExpiry: card.Expiry.Format("2006-01-02"),
		Amount:           json.Number(amount.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment call: %w: %v", ErrDownstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment call: %w: status %d", ErrDownstreamUnavailable, resp.StatusCode)
	}

	var payload struct {
		PaymentID             string `json:"paymentId"`
		PaymentResponseStatus string `json:"paymentResponseStatus"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payment response: %w: %v", ErrDownstreamUnavailable, err)
	}

	switch ChargeOutcome(payload.PaymentResponseStatus) {
	case ChargeOutcomeSuccess, ChargeOutcomeFailed:
		return &ChargeResult{PaymentID: payload.PaymentID, Outcome: ChargeOutcome(payload.PaymentResponseStatus)}, nil
	default:
		return nil, fmt.Errorf("payment response status %q: %w", payload.PaymentResponseStatus, ErrDownstreamUnavailable)
	}
}
