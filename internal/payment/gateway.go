package payment

import (
	"context"
	"errors"
)

// OrderCreator define la interfaz para crear órdenes en la pasarela de pago.
type OrderCreator interface {
	// CreateOrder crea una orden remota por el monto dado en rupias.
	CreateOrder(ctx context.Context, amount float64, currency string) (map[string]interface{}, error)
}

type disabledGateway struct {
	reason string
}

// NewDisabledGateway devuelve un OrderCreator que siempre falla con la razón dada.
func NewDisabledGateway(reason string) OrderCreator {
	return &disabledGateway{reason: reason}
}

func (g *disabledGateway) CreateOrder(_ context.Context, _ float64, _ string) (map[string]interface{}, error) {
	if g.reason == "" {
		return nil, errors.New("payment gateway disabled")
	}
	return nil, errors.New(g.reason)
}
