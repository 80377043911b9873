package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/bookingpay/internal/repository"
	"github.com/Domenick1991/bookingpay/internal/service/billing"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service billing.BillingUseCase
}

type invoiceResponse struct {
	CostOfFlight string `json:"cost_of_flight"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
}

func NewInvoiceHandler(service billing.BillingUseCase) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) Register(router *gin.RouterGroup) {
	router.GET("/:bookingRef", h.get)
}

func (h *InvoiceHandler) get(c *gin.Context) {
	invoice, err := h.service.GenerateInvoice(c.Request.Context(), c.Param("bookingRef"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invoiceResponse{
		CostOfFlight: invoice.CostOfFlight.String(),
		Tax:          invoice.Tax.String(),
		Total:        invoice.Total.String(),
	})
}
