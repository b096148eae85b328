package request

import "strings"

// ApprovePaymentRequest is the body of POST /approve.
type ApprovePaymentRequest struct {
	PaymentID string `json:"paymentId"`
}

// CompletePaymentRequest is the body of POST /complete.
type CompletePaymentRequest struct {
	PaymentID string `json:"paymentId"`
	TxID      string `json:"txid"`
}

// ReconcileCompleteRequest completes a payment the wallet reported as incomplete.
// The payment id comes from the path.
type ReconcileCompleteRequest struct {
	TxID string `json:"txid"`
}

func (r ApprovePaymentRequest) ResolvePaymentID() string {
	return strings.TrimSpace(r.PaymentID)
}

func (r CompletePaymentRequest) ResolvePaymentID() string {
	return strings.TrimSpace(r.PaymentID)
}

func (r CompletePaymentRequest) ResolveTxID() string {
	return strings.TrimSpace(r.TxID)
}
