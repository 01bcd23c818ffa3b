package payment

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway implementa OrderCreator contra la API de órdenes de Razorpay.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, amount float64, currency string) (map[string]interface{}, error) {
	order, err := g.client.Order.Create(buildOrderData(amount, currency), nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}
	return order, nil
}

// buildOrderData arma el payload de la orden: monto en paise, moneda y recibo.
func buildOrderData(amount float64, currency string) map[string]interface{} {
	if currency == "" {
		currency = "INR"
	}
	return map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": currency,
		"receipt":  newReceipt(),
	}
}

func newReceipt() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "receipt_order_0"
	}
	return fmt.Sprintf("receipt_order_%d", n.Int64())
}
