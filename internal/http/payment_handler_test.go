package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type mockOrderCreator struct {
	lastAmount   float64
	lastCurrency string
	order        map[string]interface{}
	err          error
}

func (m *mockOrderCreator) CreateOrder(_ context.Context, amount float64, currency string) (map[string]interface{}, error) {
	m.lastAmount = amount
	m.lastCurrency = currency
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

func setupPaymentRouter(orders *mockOrderCreator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(zap.NewNop(), orders)
	r := gin.New()
	r.POST("/api/payment/orders", h.CreateOrder)
	return r
}

func TestPaymentHandlerCreateOrder(t *testing.T) {
	orders := &mockOrderCreator{order: map[string]interface{}{
		"id":       "order_abc123",
		"amount":   float64(50000),
		"currency": "INR",
		"status":   "created",
	}}
	r := setupPaymentRouter(orders)

	rec := performRequest(r, http.MethodPost, "/api/payment/orders", map[string]any{
		"amount": 500,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if orders.lastAmount != 500 {
		t.Fatalf("expected amount 500, got %v", orders.lastAmount)
	}
	if orders.lastCurrency != "INR" {
		t.Fatalf("expected default currency INR, got %q", orders.lastCurrency)
	}
	body := decodeBody(t, rec)
	if body["id"] != "order_abc123" || body["status"] != "created" {
		t.Fatalf("order must be echoed verbatim, got %v", body)
	}
}

func TestPaymentHandlerCreateOrder_ExplicitCurrency(t *testing.T) {
	orders := &mockOrderCreator{order: map[string]interface{}{"id": "order_x"}}
	r := setupPaymentRouter(orders)

	rec := performRequest(r, http.MethodPost, "/api/payment/orders", map[string]any{
		"amount":   12.5,
		"currency": "USD",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if orders.lastCurrency != "USD" {
		t.Fatalf("expected currency USD, got %q", orders.lastCurrency)
	}
}

func TestPaymentHandlerCreateOrder_GatewayFailure(t *testing.T) {
	orders := &mockOrderCreator{err: errTestFailure}
	r := setupPaymentRouter(orders)

	rec := performRequest(r, http.MethodPost, "/api/payment/orders", map[string]any{
		"amount": 500,
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "could not create order" {
		t.Fatalf("gateway errors must not leak, got %v", body)
	}
}
