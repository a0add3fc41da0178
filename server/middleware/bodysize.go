package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nestera/nestera-web/errors"
	"github.com/nestera/nestera-web/util"
)

// DefaultMaxBodySize applies when the configured size does not parse.
const DefaultMaxBodySize = 1 << 20 // 1MB

// BodyLimit caps request bodies at maxSize (e.g. "1MB", "512KB"). A declared
// Content-Length over the cap is rejected with 413 before the handler runs;
// bodies of unknown length fail on read once they pass the cap.
func BodyLimit(maxSize string) gin.HandlerFunc {
	limit := util.ParseSizeOr(maxSize, DefaultMaxBodySize)
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			appErr := apperrors.New(apperrors.ErrCodePayloadTooLarge, "request body exceeds "+maxSize).
				WithDetail("limit_bytes", limit)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
