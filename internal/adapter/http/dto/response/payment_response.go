package response

import (
	"encoding/json"
	"time"

	"choco_checkout/internal/domain/entities"
)

// ApproveResponse mirrors the gateway reply of a server-side approval.
type ApproveResponse struct {
	Status    string          `json:"status"`
	PaymentID string          `json:"paymentId"`
	Data      json.RawMessage `json:"data"`
}

// CompleteResponse mirrors the gateway reply of a server-side completion.
type CompleteResponse struct {
	Success   bool            `json:"success"`
	PaymentID string          `json:"paymentId"`
	TxID      string          `json:"txid"`
	PiData    json.RawMessage `json:"piData"`
}

type PaymentJournalEntryResponse struct {
	PaymentID string    `json:"paymentId"`
	SessionID string    `json:"sessionId,omitempty"`
	Status    string    `json:"status"`
	Amount    string    `json:"amount"`
	TxID      string    `json:"txid,omitempty"`
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromApproval(paymentID string, resp entities.GatewayResponse) ApproveResponse {
	return ApproveResponse{
		Status:    string(entities.PaymentStatusApproved),
		PaymentID: paymentID,
		Data:      relayable(resp.Body),
	}
}

func FromCompletion(paymentID, txid string, resp entities.GatewayResponse) CompleteResponse {
	return CompleteResponse{
		Success:   true,
		PaymentID: paymentID,
		TxID:      txid,
		PiData:    relayable(resp.Body),
	}
}

func FromJournalEntries(entries []entities.PaymentJournalEntry) []PaymentJournalEntryResponse {
	out := make([]PaymentJournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, PaymentJournalEntryResponse{
			PaymentID: e.PaymentID,
			SessionID: e.SessionID,
			Status:    string(e.Status),
			Amount:    e.Amount.String(),
			TxID:      e.TxID,
			LastError: e.LastError,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return out
}

// relayable keeps a gateway body as-is when it is JSON. Anything else is
// wrapped as a JSON string so the envelope stays valid.
func relayable(body []byte) json.RawMessage {
	if len(body) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return json.RawMessage("null")
	}
	return quoted
}
