package server

import (
	"context"
	"fmt"

	"github.com/nestera/nestera-web/component"
)

const componentName = "http-server"

var (
	_ component.Component     = (*Component)(nil)
	_ component.Describable   = (*Component)(nil)
	_ component.RouteProvider = (*Component)(nil)
)

// Component puts a Server under registry lifecycle as "http-server".
type Component struct {
	server *Server
}

// NewComponent wraps s for the component registry.
func NewComponent(s *Server) *Component {
	return &Component{server: s}
}

func (sc *Component) Name() string { return componentName }

func (sc *Component) Start(ctx context.Context) error { return sc.server.Start(ctx) }

func (sc *Component) Stop(ctx context.Context) error { return sc.server.Stop(ctx) }

// Health is healthy exactly while the listener is bound.
func (sc *Component) Health(context.Context) component.Health {
	h := component.Health{Name: componentName, Status: component.StatusHealthy}
	if !sc.server.Serving() {
		h.Status, h.Message = component.StatusUnhealthy, "not serving"
	}
	return h
}

// Describe reports the bind address, protocol and body limit.
func (sc *Component) Describe() component.Description {
	cfg := sc.server.config
	return component.Description{
		Name:    "HTTP Server",
		Type:    "server",
		Details: fmt.Sprintf("%s:%d h2c body<=%s", cfg.Host, cfg.Port, cfg.MaxBodySize),
		Port:    cfg.Port,
	}
}

// Routes lists the engine's routes for the startup summary.
func (sc *Component) Routes() []component.Route {
	return listRoutes(sc.server.engine.Routes())
}
