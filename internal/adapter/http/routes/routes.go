package routes

import (
	"log"
	"net/http"

	_ "choco_checkout/docs" // This will be auto-generated
	"choco_checkout/internal/adapter/http/handlers"
	"choco_checkout/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	fx.In

	PaymentProxy   *handlers.PaymentProxyHandler
	Checkout       *handlers.CheckoutHandler
	Product        *handlers.ProductHandler
	Order          *handlers.OrderHandler
	Reconciliation *handlers.ReconciliationHandler
}

// Run will start the server
func Run() {
	newApp().Run()
}

func newRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Proxy surface called by the wallet SDK callbacks, kept at the root.
	addPaymentProxyRoutes(&router.RouterGroup, h.PaymentProxy)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Product, h.Order)
	addCheckoutRoutes(v1, h.Checkout)
	addReconciliationRoutes(v1, h.Reconciliation)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS())
}
