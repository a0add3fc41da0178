package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/component"
)

// HealthChecker reports the current health of every registered component.
type HealthChecker func(ctx context.Context) []component.Health

// Probe answers liveness and readiness checks.
type Probe struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// Report is the /health body: the aggregate status plus one entry per
// component, in registration order.
type Report struct {
	Status     component.HealthStatus `json:"status"`
	Service    string                 `json:"service"`
	Timestamp  string                 `json:"timestamp"`
	Components []component.Health     `json:"components"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func check(ctx context.Context, checker HealthChecker) []component.Health {
	if checker == nil {
		return []component.Health{}
	}
	if results := checker(ctx); results != nil {
		return results
	}
	return []component.Health{}
}

// statusCode maps an aggregate status to HTTP. Degraded still serves.
func statusCode(s component.HealthStatus) int {
	if s == component.StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// Health reports every component and the aggregate status. Any unhealthy
// component turns the reply into a 503.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := check(c.Request.Context(), checker)
		overall := component.Overall(results)
		c.JSON(statusCode(overall), Report{
			Status:     overall,
			Service:    serviceName,
			Timestamp:  timestamp(),
			Components: results,
		})
	}
}

// Readiness answers "ready" unless a component is unhealthy.
func Readiness(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := statusCode(component.Overall(check(c.Request.Context(), checker)))
		status := "ready"
		if code != http.StatusOK {
			status = "not_ready"
		}
		c.JSON(code, Probe{Status: status, Service: serviceName, Timestamp: timestamp()})
	}
}

// Liveness only confirms the process serves HTTP.
func Liveness(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Probe{Status: "alive", Service: serviceName, Timestamp: timestamp()})
	}
}
