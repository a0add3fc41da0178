// Package bootstrap runs the application lifecycle.
//
// NewApp defaults and validates the config and sets up the logger. Run then
// starts registered components in order, runs the started and ready hooks,
// prints the startup summary and blocks until SIGINT, SIGTERM or context
// cancellation. Shutdown runs the stopping hooks and stops components in
// reverse within the graceful timeout.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.RegisterComponent(srv)
//	return app.Run(ctx)
package bootstrap
