package handlers

import (
	"net/http"

	"choco_checkout/pkg"

	"github.com/gin-gonic/gin"
)

const codeInternalError = "INTERNAL_ERROR"

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
