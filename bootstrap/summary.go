package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nestera/nestera-web/component"
)

// ModuleInfo records a mounted feature module.
type ModuleInfo struct {
	Name   string
	Routes int
}

// RouteInfo represents a registered HTTP route.
type RouteInfo struct {
	Method  string
	Path    string
	Handler string
}

// Summary tracks and displays the application bootstrap process.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	modules         []ModuleInfo
	routes          []RouteInfo
	out             io.Writer
}

// NewSummary creates a new bootstrap summary tracker writing to stdout.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
		out:         os.Stdout,
	}
}

// SetOutput redirects the summary.
func (s *Summary) SetOutput(w io.Writer) {
	s.out = w
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// TrackModule records a mounted feature module.
func (s *Summary) TrackModule(name string, routes int) {
	s.modules = append(s.modules, ModuleInfo{Name: name, Routes: routes})
}

// TrackRoute records an HTTP route that no RouteProvider reports.
func (s *Summary) TrackRoute(method, path, handler string) {
	s.routes = append(s.routes, RouteInfo{Method: method, Path: path, Handler: handler})
}

// Modules returns the tracked modules in mount order.
func (s *Summary) Modules() []ModuleInfo {
	return s.modules
}

// DisplaySummary prints the bootstrap summary. Component descriptions,
// routes and live health are read from the registry.
func (s *Summary) DisplaySummary(registry *component.Registry) {
	w := s.out
	fmt.Fprintf(w, "\n%s v%s started in %.2fs\n\n",
		s.serviceName, s.version, s.startupDuration.Seconds())

	routes := append([]RouteInfo(nil), s.routes...)
	var health []component.Health

	if registry != nil {
		var described []component.Description
		for _, c := range registry.All() {
			if d, ok := c.(component.Describable); ok {
				desc := d.Describe()
				if desc.Name == "" {
					desc.Name = c.Name()
				}
				described = append(described, desc)
			}
			if rp, ok := c.(component.RouteProvider); ok {
				for _, r := range rp.Routes() {
					routes = append(routes, RouteInfo{Method: r.Method, Path: r.Path, Handler: r.Handler})
				}
			}
		}
		health = registry.HealthAll(context.Background())

		if len(described) > 0 {
			fmt.Fprintf(w, "Components\n")
			for i, d := range described {
				details := d.Details
				if d.Port > 0 {
					details = fmt.Sprintf("%s (:%d)", details, d.Port)
				}
				fmt.Fprintf(w, "   %s [%s] %s: %s\n", branch(i, len(described)), d.Type, d.Name, details)
			}
			fmt.Fprintf(w, "\n")
		}
	}

	if len(s.modules) > 0 {
		fmt.Fprintf(w, "Modules (%d)\n", len(s.modules))
		for i, m := range s.modules {
			fmt.Fprintf(w, "   %s %s (%d routes)\n", branch(i, len(s.modules)), m.Name, m.Routes)
		}
		fmt.Fprintf(w, "\n")
	}

	if len(routes) > 0 {
		fmt.Fprintf(w, "Routes (%d)\n", len(routes))
		for i, r := range routes {
			fmt.Fprintf(w, "   %s %-7s %s -> %s\n", branch(i, len(routes)), r.Method, r.Path, r.Handler)
		}
		fmt.Fprintf(w, "\n")
	}

	if len(health) > 0 {
		fmt.Fprintf(w, "Health (%s)\n", component.Overall(health))
		for i, h := range health {
			msg := ""
			if h.Message != "" {
				msg = " - " + h.Message
			}
			fmt.Fprintf(w, "   %s %s %s: %s%s\n", branch(i, len(health)),
				healthStatusIcon(h.Status), h.Name, strings.ToLower(string(h.Status)), msg)
		}
		fmt.Fprintf(w, "\n")
	}
}

func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func healthStatusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
