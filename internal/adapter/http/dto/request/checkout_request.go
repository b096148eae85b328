package request

import (
	"errors"
	"strings"

	"choco_checkout/internal/domain/entities"
)

var (
	ErrMissingAccessToken = errors.New("missing accessToken")
	ErrInvalidCartLine    = errors.New("invalid cart line")
)

type CartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartRequest is accepted when a checkout session is created and when its cart is replaced.
type CartRequest struct {
	Items []CartLineRequest `json:"items"`
}

// ToCartLines validates each line. Duplicate products are summed later by the cart.
func (r CartRequest) ToCartLines() ([]entities.CartLine, error) {
	lines := make([]entities.CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Quantity <= 0 {
			return nil, ErrInvalidCartLine
		}
		lines = append(lines, entities.CartLine{ProductID: id, Quantity: it.Quantity})
	}
	return lines, nil
}

type WalletAuthRequest struct {
	AccessToken string `json:"accessToken"`
}

func (r WalletAuthRequest) ResolveAccessToken() (string, error) {
	token := strings.TrimSpace(r.AccessToken)
	if token == "" {
		return "", ErrMissingAccessToken
	}
	return token, nil
}

// PaymentCallbackRequest relays a wallet SDK callback for the session's payment.
type PaymentCallbackRequest struct {
	PaymentID string `json:"paymentId"`
	TxID      string `json:"txid"`
	Reason    string `json:"reason"`
}
