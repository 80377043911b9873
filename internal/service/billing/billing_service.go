package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/bookingpay/internal/domain"
	"github.com/Domenick1991/bookingpay/internal/gateway"
	"github.com/Domenick1991/bookingpay/internal/kafka"
	"github.com/Domenick1991/bookingpay/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingUseCase interface {
	PayForBooking(ctx context.Context, payment domain.BookingPayment) (*domain.BookingResponse, error)
	GenerateInvoice(ctx context.Context, bookingRef string) (*domain.Invoice, error)
}

type FraudChecker interface {
	IsBlacklisted(ctx context.Context, cardNumber string) (bool, error)
}

type PaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, card domain.CreditCard) (*gateway.ChargeResult, error)
}

type TaxLookup interface {
	VATFor(ctx context.Context, amount decimal.Decimal) decimal.Decimal
}

type Cache interface {
	GetCost(ctx context.Context, bookingRef string) (decimal.Decimal, bool, error)
	SetCost(ctx context.Context, bookingRef string, cost decimal.Decimal) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BillingService composes the downstream clients into the two billing
// operations. It holds only configuration, so concurrent use is safe.
type BillingService struct {
	payments           PaymentGateway
	taxes              TaxLookup
	costs              repository.CostRepository
	fraud              FraudChecker
	cache              Cache
	producer           Producer
	paymentTopic       string
	notificationsTopic string
}

type BillingServiceOption func(*BillingService)

// WithFraudCheck wires the fraud collaborator. Without it the payment call is
// made unconditionally; whether fraud screening applies is a deployment
// choice, not inferred at call time.
func WithFraudCheck(fraud FraudChecker) BillingServiceOption {
	return func(s *BillingService) {
		s.fraud = fraud
	}
}

func WithCostCache(cache Cache) BillingServiceOption {
	return func(s *BillingService) {
		s.cache = cache
	}
}

func WithEvents(producer Producer, paymentTopic string) BillingServiceOption {
	return func(s *BillingService) {
		s.producer = producer
		s.paymentTopic = paymentTopic
	}
}

func WithNotificationsTopic(topic string) BillingServiceOption {
	return func(s *BillingService) {
		s.notificationsTopic = topic
	}
}

func NewBillingService(
	payments PaymentGateway,
	taxes TaxLookup,
	costs repository.CostRepository,
	opts ...BillingServiceOption,
) *BillingService {
	service := &BillingService{
		payments: payments,
		taxes:    taxes,
		costs:    costs,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BillingService) PayForBooking(ctx context.Context, payment domain.BookingPayment) (*domain.BookingResponse, error) {
	if payment.BookingRef == "" {
		return nil, errors.New("booking reference is required")
	}
	if payment.Card.Number == "" {
		return nil, errors.New("card number is required")
	}
	if !payment.Amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}

	if s.fraud != nil {
		blacklisted, err := s.fraud.IsBlacklisted(ctx, payment.Card.Number)
		if err != nil {
			return nil, err
		}
		if blacklisted {
			// Payment is never attempted for a blacklisted card.
			response := &domain.BookingResponse{
				BookingRef: payment.BookingRef,
				Status:     domain.BookingResponseStatusSuspectedFraud,
			}
			s.publishPayment(ctx, "payment_suspected_fraud", payment, response)
			return response, nil
		}
	}

	charge, err := s.payments.Charge(ctx, payment.Amount, payment.Card)
	if err != nil {
		return nil, err
	}

	status := domain.BookingResponseStatusSuccess
	eventType := "payment_completed"
	if charge.Outcome == gateway.ChargeOutcomeFailed {
		status = domain.BookingResponseStatusRejected
		eventType = "payment_rejected"
	}

	response := &domain.BookingResponse{
		BookingRef: payment.BookingRef,
		PaymentID:  charge.PaymentID,
		Status:     status,
	}
	s.publishPayment(ctx, eventType, payment, response)
	return response, nil
}

func (s *BillingService) GenerateInvoice(ctx context.Context, bookingRef string) (*domain.Invoice, error) {
	if bookingRef == "" {
		return nil, errors.New("booking reference is required")
	}

	cost, err := s.costOfFlight(ctx, bookingRef)
	if err != nil {
		return nil, fmt.Errorf("cost lookup for booking %s: %w", bookingRef, err)
	}

	// Tax failures never fail the invoice; the lookup already degraded to zero.
	tax := s.taxes.VATFor(ctx, cost)

	invoice := domain.NewInvoice(cost, tax)
	s.publish(ctx, kafka.PaymentEvent{
		Type:       "invoice_generated",
		BookingRef: bookingRef,
		Amount:     invoice.CostOfFlight.String(),
		Tax:        invoice.Tax.String(),
		Total:      invoice.Total.String(),
	})
	return &invoice, nil
}

func (s *BillingService) costOfFlight(ctx context.Context, bookingRef string) (decimal.Decimal, error) {
	if s.cache != nil {
		if cost, ok, err := s.cache.GetCost(ctx, bookingRef); err == nil && ok {
			return cost, nil
		}
	}

	cost, err := s.costs.CostOfFlight(ctx, bookingRef)
	if err != nil {
		return decimal.Zero, err
	}
	if s.cache != nil {
		_ = s.cache.SetCost(ctx, bookingRef, cost)
	}
	return cost, nil
}

func (s *BillingService) publishPayment(ctx context.Context, eventType string, payment domain.BookingPayment, response *domain.BookingResponse) {
	s.publish(ctx, kafka.PaymentEvent{
		Type:       eventType,
		BookingRef: response.BookingRef,
		PaymentID:  response.PaymentID,
		Status:     string(response.Status),
		Amount:     payment.Amount.String(),
	})
}

// publish is best effort: event delivery never changes a billing outcome.
func (s *BillingService) publish(ctx context.Context, event kafka.PaymentEvent) {
	if s.producer == nil || s.paymentTopic == "" {
		return
	}
	event.EventID = uuid.NewString()
	event.OccurredAt = time.Now()

	if err := s.producer.Publish(ctx, s.paymentTopic, event.BookingRef, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", event.Type, event.BookingRef, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.BookingRef, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", event.Type, event.BookingRef, err)
		}
	}
}

var _ BillingUseCase = (*BillingService)(nil)
