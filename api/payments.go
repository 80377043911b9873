package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/bookingpay/internal/domain"
	"github.com/Domenick1991/bookingpay/internal/gateway"
	"github.com/Domenick1991/bookingpay/internal/service/billing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	service billing.BillingUseCase
}

type payForBookingRequest struct {
	BookingRef       string `json:"booking_ref"`
	Amount           string `json:"amount"`
	CreditCardNumber string `json:"credit_card_number"`
	CreditCardExpiry string `json:"credit_card_expiry"`
}

type bookingResponseBody struct {
	BookingRef string `json:"booking_ref"`
	PaymentID  string `json:"payment_id,omitempty"`
	Status     string `json:"status"`
}

func NewPaymentHandler(service billing.BillingUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

func (h *PaymentHandler) create(c *gin.Context) {
	var req payForBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	expiry, err := time.Parse("2006-01-02", req.CreditCardExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credit card expiry"})
		return
	}

	response, err := h.service.PayForBooking(c.Request.Context(), domain.BookingPayment{
		BookingRef: req.BookingRef,
		Amount:     amount,
		Card: domain.CreditCard{
			Number: req.CreditCardNumber,
			Expiry: expiry,
		},
	})
	if err != nil {
		if errors.Is(err, gateway.ErrDownstreamUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookingResponseBody{
		BookingRef: response.BookingRef,
		PaymentID:  response.PaymentID,
		Status:     string(response.Status),
	})
}
