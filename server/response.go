package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nestera/nestera-web/errors"
)

// DataResponse wraps every successful JSON reply.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondOK writes data inside the success envelope.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondWithError writes the error envelope. Errors that are not an
// AppError become INTERNAL_ERROR so their text never reaches the client.
// The original error is attached to the context for the request logger.
func RespondWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Internal(err)
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}

// NotFound is the NoRoute handler.
func NotFound(c *gin.Context) {
	RespondWithError(c, apperrors.NotFound("route", c.Request.URL.Path))
}
