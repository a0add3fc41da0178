package observability

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/nestera/nestera-web/component"
	"github.com/nestera/nestera-web/logger"
)

const componentName = "telemetry"

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// Component owns the process-wide tracer and meter providers. Start
// installs them globally together with the W3C trace-context propagator.
type Component struct {
	cfg Config
	id  Identity

	mu      sync.RWMutex
	tp      *sdktrace.TracerProvider
	mp      *sdkmetric.MeterProvider
	metrics *Metrics
}

// NewComponent creates the telemetry component. Nothing is exported until Start.
func NewComponent(cfg Config, id Identity) *Component {
	return &Component{cfg: cfg, id: id}
}

func (c *Component) Name() string { return componentName }

func (c *Component) Start(ctx context.Context) error {
	res, err := newResource(c.id)
	if err != nil {
		return fmt.Errorf("telemetry resource: %w", err)
	}
	tp, err := newTracerProvider(ctx, c.cfg, res)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	mp, err := newMeterProvider(ctx, c.cfg, res)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return fmt.Errorf("telemetry: %w", err)
	}
	metrics, err := NewMetrics(mp.Meter(instrumentationName))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return fmt.Errorf("telemetry instruments: %w", err)
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	c.mu.Lock()
	c.tp, c.mp, c.metrics = tp, mp, metrics
	c.mu.Unlock()

	logger.Info("Telemetry exporting", logger.Fields(
		"endpoint", c.cfg.Endpoint,
		"sample_rate", c.cfg.rate(),
		"interval", c.cfg.interval().String(),
	))
	return nil
}

// Stop flushes and shuts down both providers.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	tp, mp := c.tp, c.mp
	c.tp, c.mp, c.metrics = nil, nil, nil
	c.mu.Unlock()

	var errs []error
	if tp != nil {
		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if mp != nil {
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (c *Component) Health(ctx context.Context) component.Health {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tp == nil {
		return component.Health{Name: componentName, Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: componentName, Status: component.StatusHealthy}
}

func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "OpenTelemetry",
		Type:    "telemetry",
		Details: fmt.Sprintf("otlp/http %s sample=%.2f", c.cfg.Endpoint, c.cfg.rate()),
	}
}

// Metrics returns the request instruments, or nil while stopped.
func (c *Component) Metrics() *Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}
