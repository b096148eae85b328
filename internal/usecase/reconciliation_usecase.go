package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"
)

var ErrJournalDown = errors.New("payment journal unavailable")

// IReconciliationUseCase finds and repairs payments whose gateway state and
// local records disagree.
type IReconciliationUseCase interface {
	ListUnrecorded(ctx context.Context) ([]entities.PaymentJournalEntry, error)
	CompleteIncomplete(ctx context.Context, paymentID, txid string) (entities.GatewayResponse, error)
}

type ReconciliationUseCase struct {
	gateway interfaces.IPaymentGateway
	journal interfaces.IPaymentJournal
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(gateway interfaces.IPaymentGateway, journal interfaces.IPaymentJournal) *ReconciliationUseCase {
	return &ReconciliationUseCase{gateway: gateway, journal: journal}
}

// ListUnrecorded returns payments the gateway completed that have no order record.
func (u *ReconciliationUseCase) ListUnrecorded(ctx context.Context) ([]entities.PaymentJournalEntry, error) {
	if !u.journal.Available() {
		return nil, ErrJournalDown
	}
	entries, err := u.journal.ListByStatus(ctx, entities.PaymentStatusCompleted)
	if err != nil {
		log.Printf("[reconciliation][usecase] list failed err=%v", err)
		return nil, err
	}

	out := make([]entities.PaymentJournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.Unrecorded() {
			out = append(out, e)
		}
	}
	log.Printf("[reconciliation][usecase] list completed=%d unrecorded=%d", len(entries), len(out))
	return out, nil
}

// CompleteIncomplete finishes a payment the wallet SDK reported as incomplete,
// typically after the browser was closed between submission and completion.
func (u *ReconciliationUseCase) CompleteIncomplete(ctx context.Context, paymentID, txid string) (entities.GatewayResponse, error) {
	paymentID = strings.TrimSpace(paymentID)
	txid = strings.TrimSpace(txid)
	if paymentID == "" {
		return entities.GatewayResponse{}, ErrMissingPaymentID
	}
	if txid == "" {
		return entities.GatewayResponse{}, ErrMissingTxID
	}

	log.Printf("[reconciliation][usecase] complete incomplete payment_id=%s txid=%s", paymentID, txid)
	resp, err := u.gateway.Complete(ctx, paymentID, txid)
	if err != nil {
		log.Printf("[reconciliation][usecase] complete failed payment_id=%s err=%v", paymentID, err)
		return entities.GatewayResponse{}, err
	}

	if u.journal.Available() {
		entry, err := u.journal.GetByID(ctx, paymentID)
		if err != nil {
			log.Printf("[reconciliation][usecase] journal read failed payment_id=%s err=%v", paymentID, err)
			entry = entities.PaymentJournalEntry{}
		}
		entry.PaymentID = paymentID
		entry.TxID = txid
		entry.Status = entities.PaymentStatusCompleted
		entry.LastError = ""
		if entry.Amount.IsZero() {
			entry.Amount = resp.Payment.Amount
		}
		if err := u.journal.Record(ctx, entry); err != nil {
			log.Printf("[reconciliation][usecase] journal write failed payment_id=%s err=%v", paymentID, err)
		}
	}
	return resp, nil
}
