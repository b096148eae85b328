package entities

import "errors"

var (
	ErrInvalidCartProduct  = errors.New("invalid cart product id")
	ErrInvalidCartQuantity = errors.New("invalid cart quantity")
)

// CartLine is a product and quantity in the cart. 0 < Quantity <= stock.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is keyed by product id and keeps lines in insertion order so that
// orders list items the way the shopper added them.
type Cart struct {
	order []string
	lines map[string]int
}

func NewCart() *Cart {
	return &Cart{lines: map[string]int{}}
}

// NewCartFromLines builds a cart, summing duplicate product ids.
func NewCartFromLines(lines []CartLine) (*Cart, error) {
	c := NewCart()
	for _, l := range lines {
		if l.ProductID == "" {
			return nil, ErrInvalidCartProduct
		}
		if l.Quantity <= 0 {
			return nil, ErrInvalidCartQuantity
		}
		if err := c.Set(l.ProductID, c.Quantity(l.ProductID)+l.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Set replaces the quantity for a product. A zero quantity removes the line.
func (c *Cart) Set(productID string, quantity int) error {
	if productID == "" {
		return ErrInvalidCartProduct
	}
	if quantity < 0 {
		return ErrInvalidCartQuantity
	}
	if quantity == 0 {
		c.remove(productID)
		return nil
	}
	if _, ok := c.lines[productID]; !ok {
		c.order = append(c.order, productID)
	}
	c.lines[productID] = quantity
	return nil
}

func (c *Cart) Quantity(productID string) int {
	return c.lines[productID]
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, CartLine{ProductID: id, Quantity: c.lines[id]})
	}
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.order = nil
	c.lines = map[string]int{}
}

func (c *Cart) remove(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
