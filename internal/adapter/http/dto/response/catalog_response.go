package response

import (
	"time"

	"choco_checkout/internal/domain/entities"
)

type ProductResponse struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

type OrderResponse struct {
	OrderID    string              `json:"orderId"`
	PaymentID  string              `json:"paymentId"`
	TxID       string              `json:"txid"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice string              `json:"totalPrice"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			Subtotal:  it.Subtotal().String(),
		})
	}
	return OrderResponse{
		OrderID:    o.ID,
		PaymentID:  o.PaymentID,
		TxID:       o.TxID,
		Items:      items,
		TotalPrice: o.TotalPrice.String(),
		CreatedAt:  o.CreatedAt,
	}
}
