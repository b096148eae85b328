package usecase

import (
	"context"
	"errors"
	"strings"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidID       = errors.New("invalid id")
)

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}

type ProductUseCase struct {
	catalog interfaces.IProductCatalog
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(catalog interfaces.IProductCatalog) *ProductUseCase {
	return &ProductUseCase{catalog: catalog}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.catalog.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidID
	}
	p, err := u.catalog.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// IOrderUseCase reads recorded orders back for the confirmation screen.
type IOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	ledger interfaces.IOrderLedger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(ledger interfaces.IOrderLedger) *OrderUseCase {
	return &OrderUseCase{ledger: ledger}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidID
	}
	if !u.ledger.Available() {
		return entities.Order{}, ErrOrderLedgerDown
	}
	o, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
