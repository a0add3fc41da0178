package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/bootstrap"
	"github.com/nestera/nestera-web/component"
	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/modules"
	"github.com/nestera/nestera-web/modules/blockchain"
	"github.com/nestera/nestera-web/modules/health"
	"github.com/nestera/nestera-web/modules/site"
	"github.com/nestera/nestera-web/observability"
	"github.com/nestera/nestera-web/server"
	"github.com/nestera/nestera-web/server/middleware"
)

// Application is a composed, not yet started service.
type Application struct {
	*bootstrap.App[*Config]

	Server  *server.Server
	modules []string
}

// DefaultModules returns the standard feature set. cfg is defaulted first
// so the modules see their final settings.
func DefaultModules(cfg *Config) []modules.Module {
	cfg.ApplyDefaults()
	return []modules.Module{
		health.New(),
		blockchain.New(cfg.Blockchain),
		site.New(cfg.Site),
	}
}

// Compose validates cfg and assembles mods into an Application. Modules are
// mounted in name order whatever order they are passed in, and modules that
// are also components join the lifecycle in that order. The HTTP server
// component is registered last so it starts after every feature component
// and stops first.
func Compose(cfg *Config, mods []modules.Module, opts ...bootstrap.Option) (*Application, error) {
	base, err := bootstrap.NewApp(cfg, opts...)
	if err != nil {
		return nil, err
	}

	sorted, err := modules.Sorted(mods)
	if err != nil {
		return nil, err
	}

	srv := server.New(cfg.Server, base.Logger)

	var extras []gin.HandlerFunc
	if cfg.Observability.Enabled {
		telemetry := observability.NewComponent(cfg.Observability, observability.Identity{
			Service:     cfg.Name,
			Version:     cfg.Version,
			Environment: cfg.Environment,
		})
		if err := base.RegisterComponent(telemetry); err != nil {
			return nil, err
		}
		extras = append(extras, observability.Middleware(cfg.Name, middleware.RequestIDKey, telemetry.Metrics))
	}
	srv.ApplyMiddleware(extras...)

	engine := srv.GinEngine()
	host := &modules.Host{
		Router:      engine,
		Components:  base.Components,
		Logger:      base.Logger,
		ServiceName: cfg.Name,
		Environment: cfg.Environment,
	}

	names := make([]string, 0, len(sorted))
	for _, m := range sorted {
		before := len(engine.Routes())
		if err := m.Mount(host.ForModule(m.Name())); err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.Name(), err)
		}
		base.Summary.TrackModule(m.Name(), len(engine.Routes())-before)

		if c, ok := m.(component.Component); ok {
			if err := base.RegisterComponent(c); err != nil {
				return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
			}
		}
		names = append(names, m.Name())
	}

	engine.GET("/api", rootHandler(Descriptor{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		Modules:     names,
	}))

	if err := base.RegisterComponent(server.NewComponent(srv)); err != nil {
		return nil, err
	}

	base.Hook(bootstrap.StageReady, func(context.Context) error {
		base.Logger.Info("Site available", logger.Fields(
			"url", cfg.Site.BaseURL,
			"network", cfg.Blockchain.Network,
		))
		return nil
	})

	base.Logger.Debug("Application composed", map[string]interface{}{
		"modules": names,
	})

	return &Application{App: base, Server: srv, modules: names}, nil
}

// Modules returns the mounted module names in mount order.
func (a *Application) Modules() []string {
	out := make([]string, len(a.modules))
	copy(out, a.modules)
	return out
}

// Handler returns the root HTTP handler without binding a port.
func (a *Application) Handler() http.Handler {
	return a.Server.Handler()
}
