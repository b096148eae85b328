package handlers

import (
	"errors"
	"log"
	"net/http"

	response "choco_checkout/internal/adapter/http/dto/response"
	"choco_checkout/internal/usecase"
	"choco_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the chocolate catalog.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary  List products
// @Tags     catalog
// @Produce  json
// @Success  200  {array}   response.ProductResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed err=%v", err)
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary  Get a product
// @Tags     catalog
// @Produce  json
// @Param    product_id  path      string  true  "product id"
// @Success  200         {object}  response.ProductResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /v1/products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// OrderHandler reads recorded orders back for the confirmation screen.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrder godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    order_id  path      string  true  "order id"
// @Success  200       {object}  response.OrderResponse
// @Failure  404       {object}  pkg.HTTPError
// @Failure  503       {object}  pkg.HTTPError
// @Router   /v1/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] get failed order_id=%s err=%v", orderID, err)
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderLedgerDown):
		return pkg.NewDomainErrorSimple("ORDER_LEDGER_UNAVAILABLE", "Order storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError(codeInternalError, "An internal error occurred", err, http.StatusInternalServerError)
	}
}
