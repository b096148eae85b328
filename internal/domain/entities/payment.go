package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents where a payment is in the gateway lifecycle.
//
// created -> approved -> submitted -> completed, or cancelled / failed (terminal).

type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusSubmitted PaymentStatus = "submitted"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// MaxMemoLength bounds the free-text memo sent to the wallet SDK.
const MaxMemoLength = 255

func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusCancelled, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment is one attempted transfer of funds, as reported by the gateway.
//
// Metadata is opaque to this service and echoed back by the gateway.
type Payment struct {
	ID       string          `json:"paymentId"`
	Amount   decimal.Decimal `json:"amount"`
	Memo     string          `json:"memo"`
	Metadata map[string]any  `json:"metadata,omitempty"`
	TxID     string          `json:"txid,omitempty"`
	Status   PaymentStatus   `json:"status"`
}

// PaymentDraft is what the wallet SDK needs to create a payment for the current cart.
type PaymentDraft struct {
	Amount   decimal.Decimal `json:"amount"`
	Memo     string          `json:"memo"`
	Metadata map[string]any  `json:"metadata"`
}

// PaymentJournalEntry is the durable record of a payment's last known state.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//   - GSI1 (status-index): status
//
// An entry with status completed and no OrderID is a payment whose order record
// could not be written and needs manual reconciliation.
type PaymentJournalEntry struct {
	PaymentID string          `json:"paymentId"`
	SessionID string          `json:"sessionId,omitempty"`
	Status    PaymentStatus   `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	TxID      string          `json:"txid,omitempty"`
	OrderID   string          `json:"orderId,omitempty"`
	LastError string          `json:"lastError,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (e PaymentJournalEntry) Unrecorded() bool {
	return e.Status == PaymentStatusCompleted && e.OrderID == ""
}
