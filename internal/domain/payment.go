package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingResponseStatus string

const (
	BookingResponseStatusSuccess        BookingResponseStatus = "SUCCESS"
	BookingResponseStatusRejected       BookingResponseStatus = "REJECTED"
	BookingResponseStatusSuspectedFraud BookingResponseStatus = "SUSPECTED_FRAUD"
)

type CreditCard struct {
	Number string
	Expiry time.Time
}

type BookingPayment struct {
	BookingRef string
	Amount     decimal.Decimal
	Card       CreditCard
}

// BookingResponse is the terminal outcome of a payment attempt. PaymentID is
// empty only when no payment was attempted (fraud block).
type BookingResponse struct {
	BookingRef string
	PaymentID  string
	Status     BookingResponseStatus
}
