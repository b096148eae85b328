package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCORSRouter(called *bool) *gin.Engine {
	r := gin.New()
	r.Use(CORS())
	handler := func(c *gin.Context) {
		*called = true
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
	r.GET("/approve", handler)
	r.POST("/approve", handler)
	r.OPTIONS("/approve", handler)
	return r
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	called := false
	r := newCORSRouter(&called)

	req := httptest.NewRequest(http.MethodOptions, "/approve", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
	if called {
		t.Fatalf("preflight must not reach the handler")
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET,OPTIONS,POST" {
		t.Fatalf("unexpected methods header: %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Fatalf("unexpected headers header: %q", got)
	}
}

func TestCORS_EchoesOriginWithCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	called := false
	r := newCORSRouter(&called)

	req := httptest.NewRequest(http.MethodPost, "/approve", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !called {
		t.Fatalf("expected handler to run")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example" {
		t.Fatalf("unexpected origin header: %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("unexpected credentials header: %q", got)
	}
}

func TestCORS_NoOriginUsesWildcard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	called := false
	r := newCORSRouter(&called)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/approve", nil))

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected origin header: %q", got)
	}
}
