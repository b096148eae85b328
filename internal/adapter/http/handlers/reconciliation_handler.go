package handlers

import (
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

// ReconciliationHandler is the operator surface for payments that need manual follow-up.
type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// ListUnrecorded godoc
// @Summary      Payments completed without an order record
// @Tags         reconciliation
// @Produce      json
// @Success      200  {array}   response.PaymentJournalEntryResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/reconciliation/payments [get]
func (h *ReconciliationHandler) ListUnrecorded(c *gin.Context) {
	entries, err := h.usecase.ListUnrecorded(c.Request.Context())
	if err != nil {
		log.Printf("[reconciliation][handler] list failed err=%v", err)
		respondError(c, mapReconciliationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJournalEntries(entries))
}

// CompleteIncomplete godoc
// @Summary      Complete a payment left incomplete by the wallet
// @Tags         reconciliation
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                            true  "payment id"
// @Param        body        body      request.ReconcileCompleteRequest  true  "blockchain transaction"
// @Success      200         {object}  response.CompleteResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /v1/reconciliation/payments/{payment_id}/complete [post]
func (h *ReconciliationHandler) CompleteIncomplete(c *gin.Context) {
	paymentID := c.Param("payment_id")
	var payload request.ReconcileCompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	completion := request.CompletePaymentRequest{PaymentID: paymentID, TxID: payload.TxID}

	resp, err := h.usecase.CompleteIncomplete(c.Request.Context(), completion.ResolvePaymentID(), completion.ResolveTxID())
	if err != nil {
		log.Printf("[reconciliation][handler] complete failed payment_id=%s err=%v", paymentID, err)
		respondError(c, mapReconciliationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCompletion(completion.ResolvePaymentID(), completion.ResolveTxID(), resp))
}

func mapReconciliationError(err error) *pkg.AppError {
	var gwErr *entities.GatewayError
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentID), errors.Is(err, usecase.ErrMissingTxID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJournalDown):
		return pkg.NewDomainErrorSimple("PAYMENT_JOURNAL_UNAVAILABLE", "Payment journal is not configured", http.StatusServiceUnavailable)
	case errors.As(err, &gwErr):
		return mapGatewayError(gwErr)
	default:
		return pkg.NewDomainError(codeInternalError, "An internal error occurred", err, http.StatusInternalServerError)
	}
}
