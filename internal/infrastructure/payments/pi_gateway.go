package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"choco_checkout/internal/config"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes caps how much of a gateway reply is buffered for relaying.
const maxBodyBytes = 1 << 20

// PiGateway calls the Pi Platform payments API with the server-held API key.
type PiGateway struct {
	baseURL     string
	apiKey      string
	environment string
	client      *http.Client
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*PiGateway)(nil)

// NewPiGateway builds the gateway from startup configuration. The base URL and
// environment are fixed for the lifetime of the process.
func NewPiGateway(cfg config.PiConfig) *PiGateway {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
	}
	log.Printf("[payment][gateway] Pi client initialized env=%s base_url=%s key=%s", cfg.Environment, cfg.BaseURL, config.Redact(cfg.APIKey))

	return &PiGateway{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		environment: cfg.Environment,
		mockMode:    cfg.Mock,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// WithHTTPClient replaces the HTTP client, mainly for tests.
func (g *PiGateway) WithHTTPClient(c *http.Client) *PiGateway {
	g.client = c
	return g
}

// Configured reports whether PI_API_KEY is set. Mock mode does not count.
func (g *PiGateway) Configured() bool {
	return g != nil && g.apiKey != ""
}

func (g *PiGateway) MockMode() bool {
	return g != nil && g.mockMode
}

func (g *PiGateway) Environment() string {
	return g.environment
}

func (g *PiGateway) Approve(ctx context.Context, paymentID string) (entities.GatewayResponse, error) {
	if g.mockMode {
		return mockResponse(paymentID, "", entities.PaymentStatusApproved)
	}
	return g.post(ctx, "approve", paymentID, nil)
}

func (g *PiGateway) Complete(ctx context.Context, paymentID string, txid string) (entities.GatewayResponse, error) {
	if g.mockMode {
		return mockResponse(paymentID, txid, entities.PaymentStatusCompleted)
	}
	body, err := json.Marshal(map[string]string{"txid": txid})
	if err != nil {
		return entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrInvalidRequest, Err: err}
	}
	return g.post(ctx, "complete", paymentID, body)
}

func (g *PiGateway) post(ctx context.Context, action, paymentID string, body []byte) (entities.GatewayResponse, error) {
	if g.apiKey == "" {
		log.Printf("[payment][gateway] missing PI_API_KEY action=%s payment_id=%s", action, paymentID)
		return entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrMissingCredential}
	}
	if strings.TrimSpace(paymentID) == "" {
		return entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrInvalidRequest}
	}

	endpoint := fmt.Sprintf("%s/v2/payments/%s/%s", g.baseURL, url.PathEscape(paymentID), action)
	log.Printf("[payment][gateway] %s start payment_id=%s", action, paymentID)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrInvalidRequest, URL: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Key "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] %s transport failed payment_id=%s url=%s err=%v", action, paymentID, endpoint, err)
		return entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrTransport, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Printf("[payment][gateway] %s read body failed payment_id=%s err=%v", action, paymentID, err)
		return entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrTransport, URL: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[payment][gateway] %s rejected payment_id=%s status=%d", action, paymentID, resp.StatusCode)
		return entities.GatewayResponse{}, &entities.GatewayError{
			Kind:       entities.GatewayErrUpstream,
			StatusCode: resp.StatusCode,
			Body:       raw,
			URL:        endpoint,
		}
	}

	log.Printf("[payment][gateway] %s success payment_id=%s status=%d", action, paymentID, resp.StatusCode)
	return entities.GatewayResponse{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Payment:    parsePayment(raw),
	}, nil
}

// piPaymentDTO is the subset of the gateway payment object this service reads.
type piPaymentDTO struct {
	Identifier string          `json:"identifier"`
	Amount     decimal.Decimal `json:"amount"`
	Memo       string          `json:"memo"`
	Metadata   map[string]any  `json:"metadata"`
	Status     struct {
		DeveloperApproved   bool `json:"developer_approved"`
		TransactionVerified bool `json:"transaction_verified"`
		DeveloperCompleted  bool `json:"developer_completed"`
		Cancelled           bool `json:"cancelled"`
		UserCancelled       bool `json:"user_cancelled"`
	} `json:"status"`
	Transaction *struct {
		TxID string `json:"txid"`
	} `json:"transaction"`
}

func parsePayment(raw []byte) entities.Payment {
	var dto piPaymentDTO
	if len(raw) == 0 || json.Unmarshal(raw, &dto) != nil {
		return entities.Payment{}
	}

	p := entities.Payment{
		ID:       dto.Identifier,
		Amount:   dto.Amount,
		Memo:     dto.Memo,
		Metadata: dto.Metadata,
		Status:   entities.PaymentStatusCreated,
	}
	if dto.Transaction != nil {
		p.TxID = dto.Transaction.TxID
	}
	switch {
	case dto.Status.Cancelled || dto.Status.UserCancelled:
		p.Status = entities.PaymentStatusCancelled
	case dto.Status.DeveloperCompleted:
		p.Status = entities.PaymentStatusCompleted
	case dto.Status.TransactionVerified || p.TxID != "":
		p.Status = entities.PaymentStatusSubmitted
	case dto.Status.DeveloperApproved:
		p.Status = entities.PaymentStatusApproved
	}
	return p
}

func mockResponse(paymentID, txid string, status entities.PaymentStatus) (entities.GatewayResponse, error) {
	log.Printf("[payment][gateway] mock %s payment_id=%s", status, paymentID)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"identifier": paymentID,
		"created_at": now,
		"status": map[string]bool{
			"developer_approved":   true,
			"transaction_verified": status == entities.PaymentStatusCompleted,
			"developer_completed":  status == entities.PaymentStatusCompleted,
		},
	}
	if txid != "" {
		resp["transaction"] = map[string]any{"txid": txid, "verified": true}
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return entities.GatewayResponse{}, err
	}
	return entities.GatewayResponse{
		StatusCode: http.StatusOK,
		Body:       b,
		Payment:    entities.Payment{ID: paymentID, TxID: txid, Status: status},
	}, nil
}
