package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"choco_checkout/internal/adapter/http/handlers/mocks"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newReconciliationRouter(h *ReconciliationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/reconciliation/payments", h.ListUnrecorded)
	r.POST("/v1/reconciliation/payments/:payment_id/complete", h.CompleteIncomplete)
	return r
}

func TestReconciliationHandler_ListUnrecorded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("journal not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newReconciliationRouter(NewReconciliationHandler(uc))

		uc.EXPECT().ListUnrecorded(gomock.Any()).Return(nil, usecase.ErrJournalDown)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reconciliation/payments", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newReconciliationRouter(NewReconciliationHandler(uc))

		uc.EXPECT().ListUnrecorded(gomock.Any()).Return([]entities.PaymentJournalEntry{
			{PaymentID: "pay_1", TxID: "tx_1", Status: entities.PaymentStatusCompleted, Amount: decimal.RequireFromString("10")},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reconciliation/payments", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["paymentId"] != "pay_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReconciliationHandler_CompleteIncomplete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing txid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newReconciliationRouter(NewReconciliationHandler(uc))

		uc.EXPECT().CompleteIncomplete(gomock.Any(), "pay_1", "").Return(entities.GatewayResponse{}, usecase.ErrMissingTxID)

		w := postJSON(r, "/v1/reconciliation/payments/pay_1/complete", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newReconciliationRouter(NewReconciliationHandler(uc))

		uc.EXPECT().CompleteIncomplete(gomock.Any(), "pay_1", "tx_1").Return(entities.GatewayResponse{StatusCode: 200, Body: json.RawMessage(`{"identifier":"pay_1"}`)}, nil)

		w := postJSON(r, "/v1/reconciliation/payments/pay_1/complete", `{"txid":"tx_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["paymentId"] != "pay_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconciliationUseCase(ctrl)
		r := newReconciliationRouter(NewReconciliationHandler(uc))

		uc.EXPECT().CompleteIncomplete(gomock.Any(), "pay_1", "tx_1").Return(entities.GatewayResponse{}, &entities.GatewayError{Kind: entities.GatewayErrTransport, URL: "http://pi/x"})

		w := postJSON(r, "/v1/reconciliation/payments/pay_1/complete", `{"txid":"tx_1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
