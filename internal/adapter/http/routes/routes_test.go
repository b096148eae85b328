package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"choco_checkout/internal/adapter/http/handlers"
	"choco_checkout/internal/adapter/http/handlers/mocks"
	"choco_checkout/internal/config"
	"choco_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentProxyUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	proxy := mocks.NewMockIPaymentProxyUseCase(ctrl)

	router := newRouter(Handlers{
		PaymentProxy:   handlers.NewPaymentProxyHandler(proxy),
		Checkout:       handlers.NewCheckoutHandler(mocks.NewMockICheckoutSessionUseCase(ctrl)),
		Product:        handlers.NewProductHandler(mocks.NewMockIProductUseCase(ctrl)),
		Order:          handlers.NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)),
		Reconciliation: handlers.NewReconciliationHandler(mocks.NewMockIReconciliationUseCase(ctrl)),
	})
	return router, proxy
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"POST /approve",
		"GET /approve",
		"POST /complete",
		"GET /complete",
		"GET /v1/ping",
		"GET /v1/products",
		"GET /v1/products/:product_id",
		"GET /v1/orders/:order_id",
		"POST /v1/checkout/sessions",
		"GET /v1/checkout/sessions/:session_id",
		"PUT /v1/checkout/sessions/:session_id/cart",
		"POST /v1/checkout/sessions/:session_id/auth",
		"POST /v1/checkout/sessions/:session_id/begin",
		"POST /v1/checkout/sessions/:session_id/approval",
		"POST /v1/checkout/sessions/:session_id/completion",
		"POST /v1/checkout/sessions/:session_id/cancel",
		"POST /v1/checkout/sessions/:session_id/error",
		"GET /v1/reconciliation/payments",
		"POST /v1/reconciliation/payments/:payment_id/complete",
		"GET /swagger/*any",
	} {
		if !registered[want] {
			t.Fatalf("route %q not registered", want)
		}
	}
}

func TestNewRouter_PreflightAndHealth(t *testing.T) {
	router, proxy := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/complete", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.Len() != 0 {
		t.Fatalf("expected empty 200 preflight, got %d %q", w.Code, w.Body.String())
	}

	proxy.EXPECT().Health().Return(usecase.HealthStatus{Status: "ready"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/approve", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS headers on every route, got %q", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}

func TestNewPersistence_DegradedWithoutDatabase(t *testing.T) {
	p, err := newPersistence(config.Config{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Ledger.Available() || p.Journal.Available() {
		t.Fatalf("expected unavailable ledger and journal without a database")
	}
	products, err := p.Catalog.List(context.Background())
	if err != nil || len(products) == 0 {
		t.Fatalf("expected static catalog, got %d products err=%v", len(products), err)
	}
}

func TestNewEventPublisher_DisabledWithoutBrokers(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher := newEventPublisher(lc, config.Config{}, newLogger(config.Config{}))
	if publisher != nil {
		t.Fatalf("expected nil publisher, got %T", publisher)
	}
	lc.RequireStart().RequireStop()
}

func TestNewCheckoutDeps_UsesWalletTimeout(t *testing.T) {
	deps := newCheckoutDeps(config.Config{
		Wallet:   config.WalletConfig{AuthTimeout: 3 * time.Second},
		Checkout: config.CheckoutConfig{SessionTTL: time.Minute, MaxSessions: 5},
	}, checkoutCollaborators{})
	if deps.AuthTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %v", deps.AuthTimeout)
	}
	if deps.SessionTTL != time.Minute || deps.MaxSessions != 5 {
		t.Fatalf("expected session limits 1m/5, got %v/%d", deps.SessionTTL, deps.MaxSessions)
	}
	if deps.Events != nil {
		t.Fatalf("expected no event publisher")
	}
}

func TestNewUseCases_RegistersSessionJanitor(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	uc := newUseCases(lc, usecase.CheckoutDeps{SessionTTL: time.Minute})
	if uc.Checkout == nil {
		t.Fatalf("expected checkout session use case")
	}
	lc.RequireStart().RequireStop()
}

func TestAppOptions_GraphIsComplete(t *testing.T) {
	if err := fx.ValidateApp(appOptions()); err != nil {
		t.Fatalf("invalid dependency graph: %v", err)
	}
}

func TestRegisterWebServer_StartsAndStops(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lc := fxtest.NewLifecycle(t)
	cfg := config.Config{ServiceName: "test", HTTP: config.HTTPConfig{Addr: "127.0.0.1:0"}}

	registerWebServer(lc, cfg, newLogger(cfg), noopShutdowner{}, gin.New())
	lc.RequireStart().RequireStop()
}

type noopShutdowner struct{}

func (noopShutdowner) Shutdown(...fx.ShutdownOption) error { return nil }
