package interfaces

import (
	"context"

	"choco_checkout/internal/domain/entities"
)

// IOrderLedger is the durable, append-only store of completed orders.
//
// Available reports whether writes can be persisted at all; callers branch on it
// instead of relying on a silent no-op store.
type IOrderLedger interface {
	Available() bool
	Append(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
