package routes

import (
	"choco_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApprove        = "/approve"
	PathComplete       = "/complete"
	PathProducts       = "/products"
	PathOrders         = "/orders"
	PathCheckout       = "/checkout/sessions"
	PathReconciliation = "/reconciliation/payments"
)

func addPaymentProxyRoutes(rg *gin.RouterGroup, h *handlers.PaymentProxyHandler) {
	rg.POST(PathApprove, h.Approve)
	rg.GET(PathApprove, h.Health)
	rg.POST(PathComplete, h.Complete)
	rg.GET(PathComplete, h.Health)
}

func addCatalogRoutes(rg *gin.RouterGroup, products *handlers.ProductHandler, orders *handlers.OrderHandler) {
	p := rg.Group(PathProducts)
	{
		p.GET("", products.ListProducts)
		p.GET("/:product_id", products.GetProduct)
	}

	rg.GET(PathOrders+"/:order_id", orders.GetOrder)
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	sessions := rg.Group(PathCheckout)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.PUT("/:session_id/cart", h.ReplaceCart)
		sessions.POST("/:session_id/auth", h.Authenticate)
		sessions.POST("/:session_id/begin", h.Begin)

		// Wallet SDK callbacks.
		sessions.POST("/:session_id/approval", h.Approve)
		sessions.POST("/:session_id/completion", h.Complete)
		sessions.POST("/:session_id/cancel", h.Cancel)
		sessions.POST("/:session_id/error", h.Fail)
	}
}

func addReconciliationRoutes(rg *gin.RouterGroup, h *handlers.ReconciliationHandler) {
	payments := rg.Group(PathReconciliation)
	{
		payments.GET("", h.ListUnrecorded)
		payments.POST("/:payment_id/complete", h.CompleteIncomplete)
	}
}
