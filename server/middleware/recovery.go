package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nestera/nestera-web/errors"
	"github.com/nestera/nestera-web/logger"
)

// Recovery turns a handler panic into a logged stack trace and a 500
// INTERNAL_ERROR envelope. http.ErrAbortHandler is re-raised so net/http
// can drop the connection.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			log.Error("Panic recovered", map[string]interface{}{
				logger.FieldError:     fmt.Sprint(rec),
				logger.FieldRequestID: c.GetString(RequestIDKey),
				"method":              c.Request.Method,
				"path":                c.Request.URL.Path,
				"stack":               string(debug.Stack()),
			})
			if c.Writer.Written() {
				c.Abort()
				return
			}
			appErr := apperrors.Internal(fmt.Errorf("panic: %v", rec))
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
		}()
		c.Next()
	}
}
