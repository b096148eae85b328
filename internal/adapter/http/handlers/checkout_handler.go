package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "choco_checkout/internal/adapter/http/dto/request"
	response "choco_checkout/internal/adapter/http/dto/response"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase"
	"choco_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler relays wallet SDK callbacks to the checkout session they belong to.
type CheckoutHandler struct {
	usecase usecase.ICheckoutSessionUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutSessionUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateSession godoc
// @Summary      Open a checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      request.CartRequest  false  "initial cart"
// @Success      201   {object}  response.CheckoutSessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var payload request.CartRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	lines, err := payload.ToCartLines()
	if err != nil {
		respondError(c, mapCheckoutError(err))
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), lines)
	if err != nil {
		log.Printf("[checkout][handler] create failed err=%v", err)
		respondError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutView(view))
}

// GetSession godoc
// @Summary      Read a checkout session
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "session id"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id} [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutView(view))
}

// ReplaceCart godoc
// @Summary      Replace the cart of a checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string               true  "session id"
// @Param        body        body      request.CartRequest  true  "cart lines"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/cart [put]
func (h *CheckoutHandler) ReplaceCart(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.CartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	lines, err := payload.ToCartLines()
	if err != nil {
		respondError(c, mapCheckoutError(err))
		return
	}

	view, err := h.usecase.ReplaceCart(c.Request.Context(), sessionID, lines)
	if err != nil {
		log.Printf("[checkout][handler] replace cart failed session_id=%s err=%v", sessionID, err)
		respondError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutView(view))
}

// Authenticate godoc
// @Summary      Verify the shopper's wallet session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                     true  "session id"
// @Param        body        body      request.WalletAuthRequest  true  "wallet access token"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Failure      401         {object}  pkg.HTTPError
// @Failure      504         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/auth [post]
func (h *CheckoutHandler) Authenticate(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.WalletAuthRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	token, err := payload.ResolveAccessToken()
	if err != nil {
		respondError(c, mapCheckoutError(err))
		return
	}

	view, err := h.usecase.Authenticate(c.Request.Context(), sessionID, token)
	if err != nil {
		log.Printf("[checkout][handler] wallet auth failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		if appErr.Code == codeInternalError {
			appErr = pkg.NewDomainError("WALLET_AUTH_FAILED", "Wallet authentication failed", err, http.StatusUnauthorized)
		}
		respondError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutView(view))
}

// Begin godoc
// @Summary      Start a payment for the current cart
// @Description  Returns the amount, memo and metadata the wallet SDK needs to create the payment.
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "session id"
// @Success      200         {object}  response.PaymentDraftResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      401         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/begin [post]
func (h *CheckoutHandler) Begin(c *gin.Context) {
	sessionID := c.Param("session_id")
	draft, err := h.usecase.Begin(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[checkout][handler] begin failed session_id=%s err=%v", sessionID, err)
		respondError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentDraft(draft))
}

// Approve godoc
// @Summary      Wallet callback: payment ready for server approval
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                          true  "session id"
// @Param        body        body      request.PaymentCallbackRequest  true  "payment id"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/approval [post]
func (h *CheckoutHandler) Approve(c *gin.Context) {
	sessionID := c.Param("session_id")
	payload, ok := bindCallback(c)
	if !ok {
		return
	}

	view, err := h.usecase.Approve(c.Request.Context(), sessionID, strings.TrimSpace(payload.PaymentID))
	h.respondView(c, sessionID, view, err)
}

// Complete godoc
// @Summary      Wallet callback: payment ready for server completion
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                          true  "session id"
// @Param        body        body      request.PaymentCallbackRequest  true  "payment id and txid"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Success      202         {object}  response.LedgerWriteFailedResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/completion [post]
func (h *CheckoutHandler) Complete(c *gin.Context) {
	sessionID := c.Param("session_id")
	payload, ok := bindCallback(c)
	if !ok {
		return
	}

	view, err := h.usecase.Complete(c.Request.Context(), sessionID, strings.TrimSpace(payload.PaymentID), strings.TrimSpace(payload.TxID))
	h.respondView(c, sessionID, view, err)
}

// Cancel godoc
// @Summary      Wallet callback: payment cancelled by the shopper
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                          true  "session id"
// @Param        body        body      request.PaymentCallbackRequest  false  "payment id"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	sessionID := c.Param("session_id")
	payload, ok := bindCallback(c)
	if !ok {
		return
	}

	view, err := h.usecase.Cancel(c.Request.Context(), sessionID, strings.TrimSpace(payload.PaymentID))
	h.respondView(c, sessionID, view, err)
}

// Fail godoc
// @Summary      Wallet callback: wallet reported an error
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                          true  "session id"
// @Param        body        body      request.PaymentCallbackRequest  false  "payment id and reason"
// @Success      200         {object}  response.CheckoutSessionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/checkout/sessions/{session_id}/error [post]
func (h *CheckoutHandler) Fail(c *gin.Context) {
	sessionID := c.Param("session_id")
	payload, ok := bindCallback(c)
	if !ok {
		return
	}

	view, err := h.usecase.Fail(c.Request.Context(), sessionID, strings.TrimSpace(payload.PaymentID), strings.TrimSpace(payload.Reason))
	h.respondView(c, sessionID, view, err)
}

// respondView renders the session after a wallet callback. A callback that
// ended the checkout still carries the session so the shopper sees the outcome.
func (h *CheckoutHandler) respondView(c *gin.Context, sessionID string, view entities.CheckoutView, err error) {
	if err == nil {
		c.JSON(http.StatusOK, response.FromCheckoutView(view))
		return
	}

	var ledgerErr *usecase.LedgerWriteError
	if errors.As(err, &ledgerErr) {
		log.Printf("[checkout][handler] payment completed without order record session_id=%s payment_id=%s txid=%s", sessionID, ledgerErr.PaymentID, ledgerErr.TxID)
		res := response.LedgerWriteFailedResponse{
			Code:      "LEDGER_WRITE_FAILED",
			Message:   "Your payment succeeded, but the order could not be recorded. Please do not pay again; keep the payment reference for support.",
			PaymentID: ledgerErr.PaymentID,
			TxID:      ledgerErr.TxID,
			Session:   response.FromCheckoutView(view),
		}
		if view.Outcome != nil && view.Outcome.Message != "" {
			res.Message = view.Outcome.Message
		}
		c.JSON(http.StatusAccepted, res)
		return
	}

	log.Printf("[checkout][handler] callback failed session_id=%s state=%s err=%v", sessionID, view.State, err)
	appErr := mapCheckoutError(err)
	if view.SessionID != "" && view.Outcome != nil {
		details := map[string]any{}
		for k, v := range appErr.Details {
			details[k] = v
		}
		details["session"] = response.FromCheckoutView(view)
		appErr = appErr.WithDetails(details)
	}
	respondError(c, appErr)
}

// bindCallback accepts an empty body; cancel and error callbacks may not know the payment yet.
func bindCallback(c *gin.Context) (request.PaymentCallbackRequest, bool) {
	var payload request.PaymentCallbackRequest
	return payload, bindOptionalJSON(c, &payload)
}

func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, errInvalidRequest)
		return false
	}
	return true
}

func mapCheckoutError(err error) *pkg.AppError {
	var gwErr *entities.GatewayError
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionCapacity):
		return pkg.NewDomainErrorSimple("SESSION_CAPACITY", "Checkout is busy, please try again shortly", http.StatusServiceUnavailable)
	case errors.Is(err, request.ErrInvalidCartLine), errors.Is(err, entities.ErrInvalidCartProduct),
		errors.Is(err, entities.ErrInvalidCartQuantity), errors.Is(err, request.ErrMissingAccessToken),
		errors.Is(err, usecase.ErrMissingPaymentID), errors.Is(err, usecase.ErrMissingTxID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownProduct):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "A product in the cart does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Requested quantity exceeds available stock", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWalletNotReady):
		return pkg.NewDomainErrorSimple("WALLET_NOT_AUTHENTICATED", "Wallet session is not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrWalletAuthTimeout):
		return pkg.NewDomainErrorSimple("WALLET_AUTH_TIMEOUT", "Wallet authentication timed out, please retry", http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_PROGRESS", "A payment is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartLocked):
		return pkg.NewDomainErrorSimple("CART_LOCKED", "Cart cannot change while a payment is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrCompletionInProgress):
		return pkg.NewDomainErrorSimple("COMPLETION_IN_PROGRESS", "Payment completion is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrNoPaymentInFlight):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Callback is not valid in the current checkout state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_MISMATCH", "Callback refers to a different payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrAttemptAborted):
		return pkg.NewDomainErrorSimple("CHECKOUT_ABORTED", "Checkout attempt was cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrAmountMismatch):
		return pkg.NewDomainErrorSimple("AMOUNT_MISMATCH", "Gateway amount differs from the checkout total", http.StatusBadGateway)
	case errors.As(err, &gwErr):
		return mapGatewayError(gwErr)
	default:
		return pkg.NewDomainError(codeInternalError, "An internal error occurred", err, http.StatusInternalServerError)
	}
}
