package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"choco_checkout/internal/adapter/http/handlers/mocks"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProxyRouter(h *PaymentProxyHandler) *gin.Engine {
	r := gin.New()
	r.POST("/approve", h.Approve)
	r.POST("/complete", h.Complete)
	r.GET("/approve", h.Health)
	r.GET("/complete", h.Health)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentProxyHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		w := postJSON(r, "/approve", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing paymentId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "").Return(entities.GatewayResponse{}, usecase.ErrMissingPaymentID)

		w := postJSON(r, "/approve", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INVALID_REQUEST") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "pay_1").Return(entities.GatewayResponse{StatusCode: 200, Body: json.RawMessage(`{"identifier":"pay_1"}`)}, nil)

		w := postJSON(r, "/approve", `{"paymentId":" pay_1 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "approved" || body["paymentId"] != "pay_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		data, _ := body["data"].(map[string]any)
		if data["identifier"] != "pay_1" {
			t.Fatalf("expected gateway data relayed, got %s", w.Body.String())
		}
	})

	t.Run("upstream status and body relayed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		upstream := &entities.GatewayError{Kind: entities.GatewayErrUpstream, StatusCode: http.StatusForbidden, Body: json.RawMessage(`{"error":"forbidden"}`)}
		uc.EXPECT().Approve(gomock.Any(), "pay_1").Return(entities.GatewayResponse{}, upstream)

		w := postJSON(r, "/approve", `{"paymentId":"pay_1"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if w.Body.String() != `{"error":"forbidden"}` {
			t.Fatalf("expected upstream body verbatim, got %s", w.Body.String())
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "pay_1").Return(entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrMissingCredential})

		w := postJSON(r, "/approve", `{"paymentId":"pay_1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "MISSING_CREDENTIAL") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentProxyHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing txid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		uc.EXPECT().Complete(gomock.Any(), "pay_1", "").Return(entities.GatewayResponse{}, usecase.ErrMissingTxID)

		w := postJSON(r, "/complete", `{"paymentId":"pay_1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		gwErr := &entities.GatewayError{Kind: entities.GatewayErrTransport, URL: "https://api.minepi.com/v2/payments/pay_1/complete", Err: errors.New("dial tcp: timeout")}
		uc.EXPECT().Complete(gomock.Any(), "pay_1", "tx_1").Return(entities.GatewayResponse{}, gwErr)

		w := postJSON(r, "/complete", `{"paymentId":"pay_1","txid":"tx_1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "GATEWAY_UNREACHABLE" || body.Details["url"] != gwErr.URL {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "dial tcp") {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
		r := newProxyRouter(NewPaymentProxyHandler(uc))

		uc.EXPECT().Complete(gomock.Any(), "pay_1", "tx_1").Return(entities.GatewayResponse{StatusCode: 200, Body: json.RawMessage(`{"transaction":{"txid":"tx_1"}}`)}, nil)

		w := postJSON(r, "/complete", `{"paymentId":"pay_1","txid":"tx_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["txid"] != "tx_1" || body["piData"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentProxyHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentProxyUseCase(ctrl)
	r := newProxyRouter(NewPaymentProxyHandler(uc))

	uc.EXPECT().Health().Return(usecase.HealthStatus{Status: "ready", PiKeyConfigured: true}).Times(2)

	for _, path := range []string{"/approve", "/complete"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, w.Code)
		}
		if w.Body.String() != `{"status":"ready","piKeyConfigured":true}` {
			t.Fatalf("unexpected body for %s: %s", path, w.Body.String())
		}
	}
}

func TestMapPaymentProxyError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrMissingPaymentID, http.StatusBadRequest},
		{usecase.ErrMissingTxID, http.StatusBadRequest},
		{&entities.GatewayError{Kind: entities.GatewayErrMissingCredential}, http.StatusInternalServerError},
		{&entities.GatewayError{Kind: entities.GatewayErrTransport}, http.StatusBadGateway},
		{&entities.GatewayError{Kind: entities.GatewayErrInvalidRequest}, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentProxyError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
