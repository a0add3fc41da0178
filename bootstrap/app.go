package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/nestera/nestera-web/component"
	"github.com/nestera/nestera-web/logger"
)

// Stage names a point in the lifecycle where hooks run.
type Stage string

const (
	// StageStarted runs once every component has started.
	StageStarted Stage = "started"
	// StageReady runs after the ready check, right before the summary.
	StageReady Stage = "ready"
	// StageStopping runs at shutdown before any component stops.
	StageStopping Stage = "stopping"
)

// Hook is a lifecycle callback.
type Hook func(ctx context.Context) error

// App runs a service built around a typed config C.
type App[C Config] struct {
	Name       string
	Version    string
	Cfg        C
	Components *component.Registry
	Logger     *logger.Logger
	Summary    *Summary

	gracefulTimeout time.Duration
	hooks           map[Stage][]Hook

	stopOnce sync.Once
	stopErr  error
}

// NewApp defaults and validates cfg, then sets up the logger. Nothing is
// started, so a rejected config never reaches a listener.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	base := cfg.GetServiceConfig()
	o := resolveOptions(opts)

	log := o.logger
	if log == nil {
		logger.Init(&base.Logging)
		log = logger.GetGlobalLogger()
	}

	registry := component.NewRegistry()
	registry.SetLogger(log)

	summary := NewSummary(base.Name, base.Version)
	if o.summaryOut != nil {
		summary.SetOutput(o.summaryOut)
	}

	return &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		Components:      registry,
		Logger:          log,
		Summary:         summary,
		gracefulTimeout: o.gracefulTimeout,
		hooks:           make(map[Stage][]Hook),
	}, nil
}

func (a *App[C]) RegisterComponent(c component.Component) error {
	return a.Components.Register(c)
}

// Hook adds hooks to run, in order, at stage.
func (a *App[C]) Hook(stage Stage, hooks ...Hook) {
	a.hooks[stage] = append(a.hooks[stage], hooks...)
}

func (a *App[C]) runHooks(ctx context.Context, stage Stage) error {
	for i, h := range a.hooks[stage] {
		if err := h(ctx); err != nil {
			return fmt.Errorf("%s hook %d: %w", stage, i, err)
		}
	}
	return nil
}

// ReadyCheck lists every component that is not fully healthy.
func (a *App[C]) ReadyCheck(ctx context.Context) error {
	var issues []string
	for _, h := range a.Components.HealthAll(ctx) {
		if h.Status == component.StatusHealthy {
			continue
		}
		issue := h.Name + "=" + string(h.Status)
		if h.Message != "" {
			issue += "(" + h.Message + ")"
		}
		issues = append(issues, issue)
	}
	if len(issues) > 0 {
		return fmt.Errorf("components not healthy: %s", strings.Join(issues, ", "))
	}
	return nil
}

// Start brings the app up without blocking. A failed ready check is only
// logged; degraded components still serve.
func (a *App[C]) Start(ctx context.Context) error {
	began := time.Now()
	a.Logger.Info("Starting application", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
	})

	if err := a.Components.StartAll(ctx); err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	if err := a.runHooks(ctx, StageStarted); err != nil {
		return err
	}
	if err := a.ReadyCheck(ctx); err != nil {
		a.Logger.Warn("Ready check reported issues", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
	}
	if err := a.runHooks(ctx, StageReady); err != nil {
		return err
	}

	a.Summary.SetStartupDuration(time.Since(began))
	a.DisplaySummary()
	return nil
}

// Run starts the app, blocks until SIGINT, SIGTERM or ctx is done, then
// shuts down. A failed start still releases whatever did start.
func (a *App[C]) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		if stopErr := a.Shutdown(); stopErr != nil {
			a.Logger.Error("Cleanup after failed start", logger.ErrorFields("shutdown", stopErr))
		}
		return err
	}

	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	a.Logger.Info("Application ready")
	<-sigCtx.Done()
	a.Logger.Info("Shutdown requested", map[string]interface{}{"reason": context.Cause(sigCtx).Error()})

	return a.Shutdown()
}

// DisplaySummary prints the startup summary from live registry data.
func (a *App[C]) DisplaySummary() {
	a.Summary.DisplaySummary(a.Components)
}

// Shutdown runs the stopping hooks and stops every started component
// within the graceful timeout. Later calls return the first result.
func (a *App[C]) Shutdown() error {
	a.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
		defer cancel()

		hookErr := a.runHooks(ctx, StageStopping)
		stopErr := a.Components.StopAll(ctx)
		if err := errors.Join(hookErr, stopErr); err != nil {
			a.stopErr = fmt.Errorf("shutdown: %w", err)
			a.Logger.Error("Shutdown completed with errors", map[string]interface{}{
				logger.FieldError: a.stopErr.Error(),
			})
			return
		}
		a.Logger.Info("Application stopped")
	})
	return a.stopErr
}
