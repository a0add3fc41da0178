package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the HTTP server instruments.
type Metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error
	if m.requests, err = meter.Int64Counter("http.server.requests",
		metric.WithDescription("Completed requests by route and status class")); err != nil {
		return nil, fmt.Errorf("http.server.requests: %w", err)
	}
	if m.duration, err = meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Request latency"), metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("http.server.duration: %w", err)
	}
	if m.inFlight, err = meter.Int64UpDownCounter("http.server.in_flight",
		metric.WithDescription("Requests currently being served")); err != nil {
		return nil, fmt.Errorf("http.server.in_flight: %w", err)
	}
	return m, nil
}

func (m *Metrics) begin(ctx context.Context) {
	m.inFlight.Add(ctx, 1)
}

func (m *Metrics) end(ctx context.Context, route string, code int, elapsed time.Duration) {
	m.inFlight.Add(ctx, -1)
	set := metric.WithAttributes(
		attribute.String(AttrHTTPRoute, route),
		attribute.String("http.status_class", statusClass(code)),
	)
	m.requests.Add(ctx, 1, set)
	m.duration.Record(ctx, elapsed.Seconds(), set)
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return fmt.Sprintf("%dxx", code/100)
}
