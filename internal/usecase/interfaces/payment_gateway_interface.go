package interfaces

import (
	"context"

	"choco_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment network's server-side API.
//
// Implementations are pure proxies: they hold no payment state and never retry.
// Failures are returned as *entities.GatewayError.
type IPaymentGateway interface {
	Approve(ctx context.Context, paymentID string) (entities.GatewayResponse, error)
	Complete(ctx context.Context, paymentID string, txid string) (entities.GatewayResponse, error)
	Configured() bool
	Environment() string
}
