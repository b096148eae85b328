package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"
)

var (
	ErrMissingPaymentID = errors.New("missing paymentId")
	ErrMissingTxID      = errors.New("missing txid")
)

// HealthStatus is the readiness answer of the proxy endpoints.
type HealthStatus struct {
	Status          string `json:"status"`
	PiKeyConfigured bool   `json:"piKeyConfigured"`
}

// IPaymentProxyUseCase relays server-side approval and completion to the gateway.
//
// It keeps no state: calling Approve twice for the same payment is two gateway
// calls and nothing else.
type IPaymentProxyUseCase interface {
	Approve(ctx context.Context, paymentID string) (entities.GatewayResponse, error)
	Complete(ctx context.Context, paymentID, txid string) (entities.GatewayResponse, error)
	Health() HealthStatus
}

type PaymentProxyUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentProxyUseCase = (*PaymentProxyUseCase)(nil)

func NewPaymentProxyUseCase(gateway interfaces.IPaymentGateway) *PaymentProxyUseCase {
	return &PaymentProxyUseCase{gateway: gateway}
}

func (u *PaymentProxyUseCase) Approve(ctx context.Context, paymentID string) (entities.GatewayResponse, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		log.Printf("[payment][proxy] approve rejected: missing paymentId")
		return entities.GatewayResponse{}, ErrMissingPaymentID
	}

	log.Printf("[payment][proxy] approve start payment_id=%s", paymentID)
	resp, err := u.gateway.Approve(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][proxy] approve failed payment_id=%s err=%v", paymentID, err)
		return entities.GatewayResponse{}, err
	}
	log.Printf("[payment][proxy] approve success payment_id=%s", paymentID)
	return resp, nil
}

func (u *PaymentProxyUseCase) Complete(ctx context.Context, paymentID, txid string) (entities.GatewayResponse, error) {
	paymentID = strings.TrimSpace(paymentID)
	txid = strings.TrimSpace(txid)
	if paymentID == "" {
		log.Printf("[payment][proxy] complete rejected: missing paymentId")
		return entities.GatewayResponse{}, ErrMissingPaymentID
	}
	if txid == "" {
		log.Printf("[payment][proxy] complete rejected: missing txid payment_id=%s", paymentID)
		return entities.GatewayResponse{}, ErrMissingTxID
	}

	log.Printf("[payment][proxy] complete start payment_id=%s txid=%s", paymentID, txid)
	resp, err := u.gateway.Complete(ctx, paymentID, txid)
	if err != nil {
		log.Printf("[payment][proxy] complete failed payment_id=%s txid=%s err=%v", paymentID, txid, err)
		return entities.GatewayResponse{}, err
	}
	log.Printf("[payment][proxy] complete success payment_id=%s txid=%s", paymentID, txid)
	return resp, nil
}

func (u *PaymentProxyUseCase) Health() HealthStatus {
	return HealthStatus{Status: "ready", PiKeyConfigured: u.gateway.Configured()}
}
