package interfaces

import (
	"context"

	"choco_checkout/internal/domain/entities"
)

// IEventPublisher emits checkout events for downstream consumers (fulfilment,
// reconciliation). Publishing is best effort and never changes a checkout's outcome.
type IEventPublisher interface {
	PublishOrderCompleted(ctx context.Context, order entities.Order) error
	PublishLedgerWriteFailed(ctx context.Context, entry entities.PaymentJournalEntry) error
}
