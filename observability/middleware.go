package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// MetricsSource yields the current instruments; nil disables metrics.
type MetricsSource func() *Metrics

// Middleware wraps each request in a server span named "<METHOD> <route>"
// and records request metrics. Incoming W3C trace context is continued.
// Unmatched requests share the route "unmatched".
func Middleware(serviceName, requestIDKey string, metrics MetricsSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		info := &RequestInfo{Route: route, RequestID: c.GetString(requestIDKey), Started: time.Now()}

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := StartSpan(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String(AttrHTTPMethod, c.Request.Method),
				attribute.String(AttrHTTPRoute, route),
				attribute.String(AttrRequestID, info.RequestID),
			),
		)

		var m *Metrics
		if metrics != nil {
			m = metrics()
		}
		if m != nil {
			m.begin(ctx)
		}

		// A panic is recorded as a 500 and handed on to the recovery
		// middleware.
		defer func() {
			rec := recover()
			code := c.Writer.Status()
			if rec != nil {
				code = http.StatusInternalServerError
			}
			span.SetAttributes(attribute.Int(AttrHTTPStatusCode, code))
			if code >= http.StatusInternalServerError {
				msg := http.StatusText(code)
				switch last := c.Errors.Last(); {
				case rec != nil:
					msg = fmt.Sprint(rec)
					span.RecordError(fmt.Errorf("panic: %v", rec))
				case last != nil:
					span.RecordError(last.Err)
					msg = last.Error()
				}
				span.SetStatus(codes.Error, msg)
			}
			if m != nil {
				m.end(ctx, route, code, time.Since(info.Started))
			}
			span.End()
			if rec != nil {
				panic(rec)
			}
		}()

		c.Request = c.Request.WithContext(withRequestInfo(ctx, info))
		c.Next()
	}
}
