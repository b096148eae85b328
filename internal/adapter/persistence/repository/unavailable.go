package repository

import (
	"context"
	"errors"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"
)

var ErrJournalUnavailable = errors.New("payment journal unavailable: database not configured")

// UnavailableOrderLedger stands in for the ledger when no database is configured.
// It reports Available() == false and fails every write.
type UnavailableOrderLedger struct{}

var _ interfaces.IOrderLedger = UnavailableOrderLedger{}

func (UnavailableOrderLedger) Available() bool { return false }

func (UnavailableOrderLedger) Append(context.Context, entities.Order) error {
	return ErrLedgerUnavailable
}

func (UnavailableOrderLedger) GetByID(context.Context, string) (entities.Order, error) {
	return entities.Order{}, ErrLedgerUnavailable
}

// UnavailablePaymentJournal is the journal counterpart of UnavailableOrderLedger.
type UnavailablePaymentJournal struct{}

var _ interfaces.IPaymentJournal = UnavailablePaymentJournal{}

func (UnavailablePaymentJournal) Available() bool { return false }

func (UnavailablePaymentJournal) Record(context.Context, entities.PaymentJournalEntry) error {
	return ErrJournalUnavailable
}

func (UnavailablePaymentJournal) GetByID(context.Context, string) (entities.PaymentJournalEntry, error) {
	return entities.PaymentJournalEntry{}, ErrJournalUnavailable
}

func (UnavailablePaymentJournal) ListByStatus(context.Context, entities.PaymentStatus) ([]entities.PaymentJournalEntry, error) {
	return nil, ErrJournalUnavailable
}
