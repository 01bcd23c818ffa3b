package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/payment"
)

// PaymentHandler mantiene dependencias para la creación de órdenes de pago.
type PaymentHandler struct {
	logger *zap.Logger
	orders payment.OrderCreator
}

func NewPaymentHandler(logger *zap.Logger, orders payment.OrderCreator) *PaymentHandler {
	return &PaymentHandler{
		logger: logger,
		orders: orders,
	}
}

// CreateOrder maneja POST /api/payment/orders. El monto llega en rupias; la
// pasarela lo recibe en paise. La respuesta es el objeto de orden tal cual lo
// devuelve la pasarela.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req.Amount, currency)
	if err != nil {
		h.logger.Error("create order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
