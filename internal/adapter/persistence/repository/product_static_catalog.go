package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"
)

//go:embed seed/products.json
var seedProducts []byte

// StaticProductCatalog serves the bundled catalog when no database is configured.
type StaticProductCatalog struct {
	products []entities.Product
	byID     map[string]entities.Product
}

var _ interfaces.IProductCatalog = (*StaticProductCatalog)(nil)

func NewStaticProductCatalog() (*StaticProductCatalog, error) {
	return newStaticProductCatalog(seedProducts)
}

func newStaticProductCatalog(raw []byte) (*StaticProductCatalog, error) {
	var products []entities.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse product seed: %w", err)
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("parse product seed: product without id")
		}
		byID[p.ID] = p
	}
	return &StaticProductCatalog{products: products, byID: byID}, nil
}

func (c *StaticProductCatalog) List(context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *StaticProductCatalog) GetByID(_ context.Context, id string) (entities.Product, error) {
	return c.byID[id], nil
}
