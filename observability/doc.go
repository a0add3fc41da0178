// Package observability wires OpenTelemetry into the service.
//
// Component installs OTLP/HTTP tracer and meter providers on Start and
// flushes them on Stop. Middleware traces every Gin request as a server span
// named "<METHOD> <route>" and records request metrics:
//
//	tel := observability.NewComponent(cfg.Observability, observability.Identity{Service: name})
//	srv.ApplyMiddleware(observability.Middleware(name, middleware.RequestIDKey, tel.Metrics))
//
// Spans for a single operation can also be started directly:
//
//	ctx, span := observability.StartSpan(ctx, "faq.render")
//	defer span.End()
package observability
