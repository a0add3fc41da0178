// Package endpoint provides the probe and build-info handlers mounted by the
// health module: /health, /health/live, /health/ready, /info and /version.
package endpoint
