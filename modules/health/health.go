// Package health mounts the health, readiness, info and version endpoints.
package health

import (
	"github.com/nestera/nestera-web/modules"
	"github.com/nestera/nestera-web/server/endpoint"
)

// Name is the module name.
const Name = "health"

// Module serves the operational endpoints. Health is read from the
// component registry on each request.
type Module struct{}

// New returns the health module.
func New() *Module { return &Module{} }

// Name implements modules.Module.
func (m *Module) Name() string { return Name }

// Mount registers /health, /health/live, /health/ready, /info and /version.
func (m *Module) Mount(h *modules.Host) error {
	checker := endpoint.HealthChecker(h.Components.HealthAll)

	h.Router.GET("/health", endpoint.Health(h.ServiceName, checker))
	h.Router.GET("/health/live", endpoint.Liveness(h.ServiceName))
	h.Router.GET("/health/ready", endpoint.Readiness(h.ServiceName, checker))
	h.Router.GET("/info", endpoint.Info(h.ServiceName, h.Environment))
	h.Router.GET("/version", endpoint.Version())
	return nil
}
