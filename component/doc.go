// Package component defines lifecycle-managed parts of the service and the
// ordered registry that starts, stops and health-checks them.
//
// Components start in registration order and stop in reverse order. A
// component may also implement Describable to appear in the startup summary.
package component
