package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/logger"
)

// SlowRequestThreshold marks requests that took longer as slow in the log.
const SlowRequestThreshold = 500 * time.Millisecond

// quietPrefixes are never logged on success: probes and static assets.
var quietPrefixes = []string{"/health", "/static/"}

// RequestLogger logs one line per request once the handler chain returns.
// 5xx log at error, 4xx at warn and the rest at debug. Successful requests
// under a quiet prefix are skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if status < http.StatusBadRequest && quiet(path) {
			return
		}
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		latency := time.Since(start)
		fields := map[string]interface{}{
			"method":              c.Request.Method,
			"path":                path,
			logger.FieldStatus:    status,
			"latency":             latency.String(),
			"bytes":               c.Writer.Size(),
			"client":              c.ClientIP(),
			logger.FieldRequestID: c.GetString(RequestIDKey),
		}
		if route := c.FullPath(); route != "" {
			fields["route"] = route
		}
		if latency > SlowRequestThreshold {
			fields["slow"] = true
		}
		if len(c.Errors) > 0 {
			fields[logger.FieldError] = c.Errors.Last().Error()
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed", fields)
		case status >= http.StatusBadRequest:
			log.Warn("Request rejected", fields)
		default:
			log.Debug("Request completed", fields)
		}
	}
}

func quiet(path string) bool {
	for _, p := range quietPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
