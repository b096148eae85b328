package entities

import "github.com/shopspring/decimal"

// CheckoutState is the orchestrator state for one checkout attempt.
//
// Idle -> Creating -> Approving -> AwaitingNetworkSubmission -> Completing -> Completed,
// with Cancelled and Failed reachable from every non-terminal state.

type CheckoutState string

const (
	CheckoutIdle                      CheckoutState = "idle"
	CheckoutCreating                  CheckoutState = "creating"
	CheckoutApproving                 CheckoutState = "approving"
	CheckoutAwaitingNetworkSubmission CheckoutState = "awaiting_network_submission"
	CheckoutCompleting                CheckoutState = "completing"
	CheckoutCompleted                 CheckoutState = "completed"
	CheckoutCancelled                 CheckoutState = "cancelled"
	CheckoutFailed                    CheckoutState = "failed"
)

func (s CheckoutState) IsTerminal() bool {
	switch s {
	case CheckoutCompleted, CheckoutCancelled, CheckoutFailed:
		return true
	}
	return false
}

// IsProcessing reports whether a payment is in flight and the UI must stay locked.
func (s CheckoutState) IsProcessing() bool {
	return s != CheckoutIdle && !s.IsTerminal()
}

// OutcomeKind distinguishes terminal outcomes for the shopper.
type OutcomeKind string

const (
	OutcomeCompleted          OutcomeKind = "completed"
	OutcomeCancelled          OutcomeKind = "cancelled"
	OutcomeGatewayFailed      OutcomeKind = "gateway_failed"
	OutcomeGatewayUnreachable OutcomeKind = "gateway_unreachable"
	OutcomeWalletError        OutcomeKind = "wallet_error"
	OutcomeLedgerWriteFailed  OutcomeKind = "ledger_write_failed"
)

// CheckoutOutcome is the human-readable result of a terminal checkout.
//
// For OutcomeLedgerWriteFailed the payment went through: PaymentID and TxID
// are the references for manual reconciliation.
type CheckoutOutcome struct {
	Kind       OutcomeKind     `json:"kind"`
	Message    string          `json:"message"`
	OrderID    string          `json:"orderId,omitempty"`
	PaymentID  string          `json:"paymentId,omitempty"`
	TxID       string          `json:"txid,omitempty"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// CheckoutView is a snapshot of a checkout for rendering.
type CheckoutView struct {
	SessionID     string           `json:"sessionId"`
	State         CheckoutState    `json:"state"`
	Processing    bool             `json:"processing"`
	Authenticated bool             `json:"authenticated"`
	PaymentID     string           `json:"paymentId,omitempty"`
	TxID          string           `json:"txid,omitempty"`
	Draft         *PaymentDraft    `json:"draft,omitempty"`
	Outcome       *CheckoutOutcome `json:"outcome,omitempty"`
	Cart          []CartLine       `json:"cart"`
}
