// Package modules defines the contract between feature modules and the
// composition root.
//
// A Module owns a slice of the HTTP surface and, optionally, a lifecycle
// component. It is mounted exactly once onto a Host:
//
//	type Module interface {
//	    Name() string
//	    Mount(h *Host) error
//	}
//
// Modules never reference each other. Anything shared (router, registry,
// logger, service identity) arrives through the Host, so the order in which
// modules are mounted has no effect on the routes or responses they produce.
package modules
