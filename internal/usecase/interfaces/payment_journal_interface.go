package interfaces

import (
	"context"

	"choco_checkout/internal/domain/entities"
)

// IPaymentJournal records the last known state of each payment so that
// approved-but-not-completed and completed-but-unrecorded payments can be found later.

type IPaymentJournal interface {
	Available() bool
	Record(ctx context.Context, entry entities.PaymentJournalEntry) error
	GetByID(ctx context.Context, paymentID string) (entities.PaymentJournalEntry, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentJournalEntry, error)
}
