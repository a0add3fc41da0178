package modules

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/component"
	"github.com/nestera/nestera-web/logger"
)

// Module is a self-contained feature mounted into the application.
type Module interface {
	// Name identifies the module. Names must be unique within an application.
	Name() string
	// Mount registers the module's routes and components on the host.
	Mount(h *Host) error
}

// Host is what a module sees of the application while mounting.
type Host struct {
	Router      gin.IRouter
	Components  *component.Registry
	Logger      *logger.Logger
	ServiceName string
	Environment string
}

// ForModule returns a copy of the host whose logger is tagged with the
// module name.
func (h *Host) ForModule(name string) *Host {
	scoped := *h
	if h.Logger != nil {
		scoped.Logger = h.Logger.WithFields(map[string]interface{}{logger.FieldModule: name})
	}
	return &scoped
}

// Sorted returns mods ordered by name. Nil modules, empty names and duplicate
// names are rejected.
func Sorted(mods []Module) ([]Module, error) {
	out := make([]Module, 0, len(mods))
	seen := make(map[string]bool, len(mods))
	for i, m := range mods {
		if m == nil {
			return nil, fmt.Errorf("module %d is nil", i)
		}
		name := m.Name()
		if name == "" {
			return nil, fmt.Errorf("module %d has no name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("module %q registered more than once", name)
		}
		seen[name] = true
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b Module) int { return cmp.Compare(a.Name(), b.Name()) })
	return out, nil
}
