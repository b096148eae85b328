package response

import "choco_checkout/internal/domain/entities"

type CartLineResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type PaymentDraftResponse struct {
	Amount   string         `json:"amount"`
	Memo     string         `json:"memo"`
	Metadata map[string]any `json:"metadata"`
}

type CheckoutOutcomeResponse struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	OrderID    string `json:"orderId,omitempty"`
	PaymentID  string `json:"paymentId,omitempty"`
	TxID       string `json:"txid,omitempty"`
	TotalPrice string `json:"totalPrice,omitempty"`
}

// CheckoutSessionResponse is what the storefront renders: state, lock flag,
// cart and, once terminal, the outcome.
type CheckoutSessionResponse struct {
	SessionID     string                   `json:"sessionId"`
	State         string                   `json:"state"`
	Processing    bool                     `json:"processing"`
	Authenticated bool                     `json:"authenticated"`
	PaymentID     string                   `json:"paymentId,omitempty"`
	TxID          string                   `json:"txid,omitempty"`
	Draft         *PaymentDraftResponse    `json:"draft,omitempty"`
	Outcome       *CheckoutOutcomeResponse `json:"outcome,omitempty"`
	Cart          []CartLineResponse       `json:"cart"`
}

// LedgerWriteFailedResponse tells the shopper the payment went through even
// though the order could not be recorded.
type LedgerWriteFailedResponse struct {
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	PaymentID string                  `json:"paymentId"`
	TxID      string                  `json:"txid"`
	Session   CheckoutSessionResponse `json:"session"`
}

func FromPaymentDraft(d entities.PaymentDraft) PaymentDraftResponse {
	return PaymentDraftResponse{
		Amount:   d.Amount.String(),
		Memo:     d.Memo,
		Metadata: d.Metadata,
	}
}

func FromCheckoutView(v entities.CheckoutView) CheckoutSessionResponse {
	res := CheckoutSessionResponse{
		SessionID:     v.SessionID,
		State:         string(v.State),
		Processing:    v.Processing,
		Authenticated: v.Authenticated,
		PaymentID:     v.PaymentID,
		TxID:          v.TxID,
		Cart:          make([]CartLineResponse, 0, len(v.Cart)),
	}
	for _, l := range v.Cart {
		res.Cart = append(res.Cart, CartLineResponse{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	if v.Draft != nil {
		d := FromPaymentDraft(*v.Draft)
		res.Draft = &d
	}
	if v.Outcome != nil {
		o := CheckoutOutcomeResponse{
			Kind:      string(v.Outcome.Kind),
			Message:   v.Outcome.Message,
			OrderID:   v.Outcome.OrderID,
			PaymentID: v.Outcome.PaymentID,
			TxID:      v.Outcome.TxID,
		}
		if !v.Outcome.TotalPrice.IsZero() {
			o.TotalPrice = v.Outcome.TotalPrice.String()
		}
		res.Outcome = &o
	}
	return res
}
