package server

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/component"
)

// systemPaths are probe and build-info routes, listed after the rest.
var systemPaths = map[string]bool{
	"/health":       true,
	"/health/live":  true,
	"/health/ready": true,
	"/info":         true,
	"/version":      true,
}

var methodRank = map[string]int{
	"GET": 0, "HEAD": 1, "POST": 2, "PUT": 3, "PATCH": 4, "DELETE": 5,
}

func rankMethod(m string) int {
	if r, ok := methodRank[m]; ok {
		return r
	}
	return len(methodRank)
}

// listRoutes orders routes application first, then by path and method, and
// labels system routes.
func listRoutes(routes gin.RoutesInfo) []component.Route {
	sorted := slices.Clone(routes)
	slices.SortFunc(sorted, func(a, b gin.RouteInfo) int {
		if as, bs := systemPaths[a.Path], systemPaths[b.Path]; as != bs {
			if as {
				return 1
			}
			return -1
		}
		return cmp.Or(
			strings.Compare(a.Path, b.Path),
			cmp.Compare(rankMethod(a.Method), rankMethod(b.Method)),
		)
	})

	out := make([]component.Route, len(sorted))
	for i, r := range sorted {
		handler := formatHandlerName(r.Handler)
		if systemPaths[r.Path] {
			handler += " (system)"
		}
		out[i] = component.Route{Method: r.Method, Path: r.Path, Handler: handler}
	}
	return out
}

// formatHandlerName shortens Gin's handler symbol:
// ".../modules/site.(*Module).home-fm" gives "Module.home" and a closure
// such as ".../endpoint.Health.func1" gives "health".
func formatHandlerName(symbol string) string {
	name := strings.TrimSuffix(symbol, "-fm")
	name = name[strings.LastIndex(name, "/")+1:]
	name = strings.NewReplacer("(*", "", ")", "").Replace(name)

	parts := strings.Split(name, ".")
	closure := false
	for len(parts) > 1 && strings.HasPrefix(parts[len(parts)-1], "func") {
		parts = parts[:len(parts)-1]
		closure = true
	}
	if closure {
		return strings.ToLower(parts[len(parts)-1])
	}
	if len(parts) > 1 && parts[0] == strings.ToLower(parts[0]) {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
