package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/bookingpay/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.PaymentEvent) error {
	fmt.Printf("send receipt for booking %s: %s (payment %s, total %s)\n", event.BookingRef, event.Type, event.PaymentID, event.Total)
	return nil
}
