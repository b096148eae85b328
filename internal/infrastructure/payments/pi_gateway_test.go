package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"choco_checkout/internal/config"
	"choco_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, baseURL, key string) *PiGateway {
	t.Helper()
	return NewPiGateway(config.PiConfig{
		APIKey:      key,
		BaseURL:     baseURL,
		Environment: config.EnvironmentForKey(key),
		Timeout:     2 * time.Second,
	})
}

func TestPiGateway_ApproveSuccess(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"identifier":"pay_1","amount":10.5,"memo":"2 chocolates","status":{"developer_approved":true}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "sandbox_secret_key_123")
	resp, err := g.Approve(context.Background(), "pay_1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v2/payments/pay_1/approve", gotPath)
	assert.Equal(t, "Key sandbox_secret_key_123", gotAuth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pay_1", resp.Payment.ID)
	assert.Equal(t, "10.5", resp.Payment.Amount.String())
	assert.Equal(t, entities.PaymentStatusApproved, resp.Payment.Status)
	assert.JSONEq(t, `{"identifier":"pay_1","amount":10.5,"memo":"2 chocolates","status":{"developer_approved":true}}`, string(resp.Body))
}

func TestPiGateway_CompletePostsTxID(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		assert.Equal(t, "/v2/payments/pay_1/complete", r.URL.Path)
		_, _ = w.Write([]byte(`{"identifier":"pay_1","transaction":{"txid":"tx123"},"status":{"developer_approved":true,"transaction_verified":true,"developer_completed":true}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "live_secret_key_123")
	resp, err := g.Complete(context.Background(), "pay_1", "tx123")
	require.NoError(t, err)

	assert.Equal(t, "tx123", body["txid"])
	assert.Equal(t, "tx123", resp.Payment.TxID)
	assert.Equal(t, entities.PaymentStatusCompleted, resp.Payment.Status)
}

func TestPiGateway_UpstreamErrorRelaysStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"payment_not_found"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "live_secret_key_123")
	_, err := g.Approve(context.Background(), "pay_1")
	require.Error(t, err)

	var gwErr *entities.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, entities.GatewayErrUpstream, gwErr.Kind)
	assert.Equal(t, http.StatusForbidden, gwErr.StatusCode)
	assert.Equal(t, `{"error":"payment_not_found"}`, string(gwErr.Body))
}

func TestPiGateway_TransportFailureCarriesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := newTestGateway(t, url, "live_secret_key_123")
	_, err := g.Complete(context.Background(), "pay_1", "tx1")
	require.Error(t, err)

	var gwErr *entities.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, entities.GatewayErrTransport, gwErr.Kind)
	assert.Equal(t, url+"/v2/payments/pay_1/complete", gwErr.URL)
}

func TestPiGateway_MissingCredentialMakesNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	assert.False(t, g.Configured())

	_, err := g.Approve(context.Background(), "pay_1")
	var gwErr *entities.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, entities.GatewayErrMissingCredential, gwErr.Kind)
	assert.NotContains(t, err.Error(), "Key ")
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestPiGateway_MockMode(t *testing.T) {
	g := NewPiGateway(config.PiConfig{Mock: true, Environment: config.EnvironmentSandbox})
	assert.False(t, g.Configured(), "mock mode must not report a configured key")
	assert.True(t, g.MockMode())

	resp, err := g.Complete(context.Background(), "pay_9", "tx9")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "tx9", resp.Payment.TxID)
	assert.Equal(t, entities.PaymentStatusCompleted, resp.Payment.Status)
}

func TestParsePayment_NonJSONBody(t *testing.T) {
	p := parsePayment([]byte("ok"))
	assert.Equal(t, entities.Payment{}, p)
}
