package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/bookingpay/internal/domain"
	"github.com/Domenick1991/bookingpay/internal/gateway"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBillingUseCase is a mock implementation of billing.BillingUseCase
type MockBillingUseCase struct {
	mock.Mock
}

func (m *MockBillingUseCase) PayForBooking(ctx context.Context, payment domain.BookingPayment) (*domain.BookingResponse, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingResponse), args.Error(1)
}

func (m *MockBillingUseCase) GenerateInvoice(ctx context.Context, bookingRef string) (*domain.Invoice, error) {
	args := m.Called(ctx, bookingRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func paymentRequestBody() []byte {
	body, _ := json.Marshal(payForBookingRequest{
		BookingRef:       "1111",
		Amount:           "20.55",
		CreditCardNumber: "1234-1234-1234-1234",
		CreditCardExpiry: "2018-02-01",
	})
	return body
}

func expectedPayment() domain.BookingPayment {
	amount, _ := decimal.NewFromString("20.55")
	return domain.BookingPayment{
		BookingRef: "1111",
		Amount:     amount,
		Card: domain.CreditCard{
			Number: "1234-1234-1234-1234",
			Expiry: time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestPaymentHandler_create(t *testing.T) {
	mockService := &MockBillingUseCase{}
	handler := NewPaymentHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/payments", bytes.NewReader(paymentRequestBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("PayForBooking", c.Request.Context(), expectedPayment()).Return(&domain.BookingResponse{
		BookingRef: "1111",
		PaymentID:  "2222",
		Status:     domain.BookingResponseStatusSuccess,
	}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp bookingResponseBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1111", resp.BookingRef)
	assert.Equal(t, "2222", resp.PaymentID)
	assert.Equal(t, "SUCCESS", resp.Status)

	mockService.AssertExpectations(t)
}

func TestPaymentHandler_create_SuspectedFraud(t *testing.T) {
	mockService := &MockBillingUseCase{}
	handler := NewPaymentHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/payments", bytes.NewReader(paymentRequestBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("PayForBooking", c.Request.Context(), expectedPayment()).Return(&domain.BookingResponse{
		BookingRef: "1111",
		Status:     domain.BookingResponseStatusSuspectedFraud,
	}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SUSPECTED_FRAUD")
	// No payment was attempted, so no payment id appears on the wire.
	assert.NotContains(t, w.Body.String(), "payment_id")

	mockService.AssertExpectations(t)
}

func TestPaymentHandler_create_DownstreamUnavailable(t *testing.T) {
	mockService := &MockBillingUseCase{}
	handler := NewPaymentHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/payments", bytes.NewReader(paymentRequestBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("PayForBooking", c.Request.Context(), expectedPayment()).
		Return(nil, fmt.Errorf("payment call: %w: status 500", gateway.ErrDownstreamUnavailable))

	handler.create(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	mockService.AssertExpectations(t)
}

func TestPaymentHandler_create_InvalidAmount(t *testing.T) {
	mockService := &MockBillingUseCase{}
	handler := NewPaymentHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(payForBookingRequest{
		BookingRef:       "1111",
		Amount:           "twenty",
		CreditCardNumber: "1234-1234-1234-1234",
		CreditCardExpiry: "2018-02-01",
	})
	c.Request = httptest.NewRequest("POST", "/payments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "PayForBooking", mock.Anything, mock.Anything)
}

func TestPaymentHandler_create_InvalidExpiry(t *testing.T) {
	mockService := &MockBillingUseCase{}
	handler := NewPaymentHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(payForBookingRequest{
		BookingRef:       "1111",
		Amount:           "20.55",
		CreditCardNumber: "1234-1234-1234-1234",
		CreditCardExpiry: "02/2018",
	})
	c.Request = httptest.NewRequest("POST", "/payments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "PayForBooking", mock.Anything, mock.Anything)
}
