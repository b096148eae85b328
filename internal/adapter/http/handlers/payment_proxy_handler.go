package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "choco_checkout/internal/adapter/http/dto/request"
	response "choco_checkout/internal/adapter/http/dto/response"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase"
	"choco_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentProxyHandler exposes server-side approval and completion to the browser.
type PaymentProxyHandler struct {
	usecase usecase.IPaymentProxyUseCase
}

func NewPaymentProxyHandler(uc usecase.IPaymentProxyUseCase) *PaymentProxyHandler {
	return &PaymentProxyHandler{usecase: uc}
}

// Approve godoc
// @Summary      Approve a payment
// @Description  Relays server-side approval of a wallet payment to the Pi Platform.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.ApprovePaymentRequest  true  "payment to approve"
// @Success      200   {object}  response.ApproveResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /approve [post]
func (h *PaymentProxyHandler) Approve(c *gin.Context) {
	var payload request.ApprovePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] approve invalid payload err=%v", err)
		respondError(c, errInvalidRequest)
		return
	}

	paymentID := payload.ResolvePaymentID()
	resp, err := h.usecase.Approve(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] approve failed payment_id=%s err=%v", paymentID, err)
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromApproval(paymentID, resp))
}

// Complete godoc
// @Summary      Complete a payment
// @Description  Relays server-side completion of a submitted wallet payment to the Pi Platform.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CompletePaymentRequest  true  "payment and blockchain transaction"
// @Success      200   {object}  response.CompleteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /complete [post]
func (h *PaymentProxyHandler) Complete(c *gin.Context) {
	var payload request.CompletePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] complete invalid payload err=%v", err)
		respondError(c, errInvalidRequest)
		return
	}

	paymentID, txid := payload.ResolvePaymentID(), payload.ResolveTxID()
	resp, err := h.usecase.Complete(c.Request.Context(), paymentID, txid)
	if err != nil {
		log.Printf("[payment][handler] complete failed payment_id=%s txid=%s err=%v", paymentID, txid, err)
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCompletion(paymentID, txid, resp))
}

// Health godoc
// @Summary      Proxy readiness
// @Tags         payments
// @Produce      json
// @Success      200  {object}  usecase.HealthStatus
// @Router       /approve [get]
// @Router       /complete [get]
func (h *PaymentProxyHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Health())
}

// fail relays upstream rejections verbatim; everything else goes through the error map.
func (h *PaymentProxyHandler) fail(c *gin.Context, err error) {
	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) && gwErr.Kind == entities.GatewayErrUpstream {
		relayUpstream(c, gwErr)
		return
	}
	respondError(c, mapPaymentProxyError(err))
}

func relayUpstream(c *gin.Context, gwErr *entities.GatewayError) {
	status := gwErr.StatusCode
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}
	contentType := "application/json"
	if len(gwErr.Body) > 0 && !json.Valid(gwErr.Body) {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(status, contentType, gwErr.Body)
}

func mapPaymentProxyError(err error) *pkg.AppError {
	var gwErr *entities.GatewayError
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing paymentId", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTxID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing txid", http.StatusBadRequest)
	case errors.As(err, &gwErr):
		return mapGatewayError(gwErr)
	default:
		return pkg.NewDomainError(codeInternalError, "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapGatewayError(gwErr *entities.GatewayError) *pkg.AppError {
	switch gwErr.Kind {
	case entities.GatewayErrMissingCredential:
		return pkg.NewDomainError("MISSING_CREDENTIAL", "Payment gateway credential is not configured", gwErr, http.StatusInternalServerError)
	case entities.GatewayErrTransport:
		return pkg.NewDomainError("GATEWAY_UNREACHABLE", "Payment gateway could not be reached", gwErr, http.StatusBadGateway).
			WithDetails(map[string]any{"url": gwErr.URL})
	case entities.GatewayErrUpstream:
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payment gateway rejected the request", gwErr, http.StatusBadGateway).
			WithDetails(map[string]any{"upstreamStatus": gwErr.StatusCode})
	default:
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", gwErr, http.StatusBadRequest)
	}
}
