package component

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nestera/nestera-web/logger"
)

// StopTimeout bounds each component's Stop call.
const StopTimeout = 10 * time.Second

type slot struct {
	c       Component
	running bool
}

// Registry owns component lifecycle. Components start in registration
// order and stop in reverse; only components that started are stopped.
type Registry struct {
	lifecycle sync.Mutex // serializes StartAll and StopAll

	mu     sync.RWMutex
	slots  []*slot
	byName map[string]*slot
	log    *logger.Logger
}

// NewRegistry returns an empty registry logging through the global logger
// until SetLogger is called.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*slot),
		log:    logger.WithComponent("registry"),
	}
}

// SetLogger routes registry log lines through log.
func (r *Registry) SetLogger(log *logger.Logger) {
	if log == nil {
		return
	}
	r.mu.Lock()
	r.log = log.WithComponent("registry")
	r.mu.Unlock()
}

// Register appends c. Names must be non-empty and unique.
func (r *Registry) Register(c Component) error {
	if c == nil {
		return errors.New("component is nil")
	}
	name := c.Name()
	if name == "" {
		return errors.New("component has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("component %q already registered", name)
	}
	s := &slot{c: c}
	r.slots = append(r.slots, s)
	r.byName[name] = s

	r.log.Debug("Component registered", map[string]interface{}{logger.FieldComponent: name})
	return nil
}

// StartAll starts every component not yet running and returns at the first
// failure. Components started before the failure stay running so StopAll
// can release them.
func (r *Registry) StartAll(ctx context.Context) error {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	for _, s := range r.pending(false) {
		name := s.c.Name()
		began := time.Now()
		if err := s.c.Start(ctx); err != nil {
			r.log.Error("Component start failed", map[string]interface{}{
				logger.FieldComponent: name,
				logger.FieldError:     err.Error(),
			})
			return fmt.Errorf("start %s: %w", name, err)
		}
		r.mark(s, true)
		r.log.Debug("Component started", logger.DurationFields(name, time.Since(began)))
	}
	r.log.Info("Components started", map[string]interface{}{"count": len(r.All())})
	return nil
}

// StopAll stops running components in reverse order, each within
// StopTimeout, and joins every failure. The registry stays readable while
// components stop, so health checks in flight during a drain complete.
func (r *Registry) StopAll(ctx context.Context) error {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	running := r.pending(true)
	var errs []error
	for i := len(running) - 1; i >= 0; i-- {
		s := running[i]
		name := s.c.Name()
		stopCtx, cancel := context.WithTimeout(ctx, StopTimeout)
		err := s.c.Stop(stopCtx)
		cancel()
		r.mark(s, false)
		if err != nil {
			r.log.Error("Component stop failed", map[string]interface{}{
				logger.FieldComponent: name,
				logger.FieldError:     err.Error(),
			})
			errs = append(errs, fmt.Errorf("stop %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// pending snapshots, in registration order, the slots whose running flag
// equals running.
func (r *Registry) pending(running bool) []*slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*slot
	for _, s := range r.slots {
		if s.running == running {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) mark(s *slot, running bool) {
	r.mu.Lock()
	s.running = running
	r.mu.Unlock()
}

// HealthAll asks every component for its health, in registration order. A
// result without a name is labelled with the component's name. No lock is
// held while components report.
func (r *Registry) HealthAll(ctx context.Context) []Health {
	comps := r.All()
	out := make([]Health, len(comps))
	for i, c := range comps {
		h := c.Health(ctx)
		if h.Name == "" {
			h.Name = c.Name()
		}
		out[i] = h
	}
	return out
}

// Get returns the component registered under name, or nil.
func (r *Registry) Get(name string) Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.byName[name]; ok {
		return s.c
	}
	return nil
}

// All returns the components in registration order.
func (r *Registry) All() []Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Component, len(r.slots))
	for i, s := range r.slots {
		out[i] = s.c
	}
	return out
}
