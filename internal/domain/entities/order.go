package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one purchased product line, priced at checkout time.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a completed purchase. It is written once, after the gateway confirms completion.
//
// Storage model (DynamoDB):
//   - PK: id
type Order struct {
	ID         string          `json:"orderId"`
	PaymentID  string          `json:"paymentId"`
	TxID       string          `json:"txid"`
	Items      []OrderItem     `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SumItems returns the sum of item subtotals.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
