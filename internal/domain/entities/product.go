package entities

import "github.com/shopspring/decimal"

// Product is a catalog entry as read by checkout. Price is in the gateway's native unit.
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID          string          `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}
