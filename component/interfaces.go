package component

import "context"

// HealthStatus is the state a component reports.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// Health is one component's answer to a health probe.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is a part of the process with a start/stop lifecycle: the HTTP
// server, the telemetry exporters or a stateful feature module.
type Component interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) Health
}

// Description is a component's line in the startup summary. An empty Name
// falls back to Component.Name and a zero Port is not shown.
type Description struct {
	Name    string
	Type    string
	Details string
	Port    int
}

// Describable components appear in the startup summary.
type Describable interface {
	Describe() Description
}

// Route is one HTTP route in the startup summary.
type Route struct {
	Method  string
	Path    string
	Handler string
}

// RouteProvider components list their HTTP routes in the startup summary.
type RouteProvider interface {
	Routes() []Route
}

// Overall folds results into one status: unhealthy beats degraded beats
// healthy. No results is healthy.
func Overall(results []Health) HealthStatus {
	worst := StatusHealthy
	for _, h := range results {
		if h.Status == StatusUnhealthy {
			return StatusUnhealthy
		}
		if h.Status == StatusDegraded {
			worst = StatusDegraded
		}
	}
	return worst
}
