package handlers

import (
	"net/http"

	"mindcare/middleware"
	"mindcare/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the simulated payment endpoint.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler returns a PaymentHandler backed by the given service.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// Confirm handles POST /api/payments/:appointmentId/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	appt, err := h.Service.Confirm(c.Param("appointmentId"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Payment confirmed successfully",
		"appointment": appt,
	})
}
