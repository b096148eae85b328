package interfaces

import (
	"context"

	"choco_checkout/internal/domain/entities"
)

// IProductCatalog is the read side of the product catalog. GetByID returns a
// zero Product (empty ID) when the product does not exist.
type IProductCatalog interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
