// Package app is the composition root of nestera-web.
//
// It owns the configuration schema, the process-wide settings accessor and
// Compose, which assembles feature modules into one Application:
//
//	cfg, err := app.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	application, err := app.Compose(cfg, app.DefaultModules(cfg))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	application.Run(ctx)
//
// Configuration is loaded and validated once per process. Every failing key
// is reported together, and nothing binds a port until the whole config
// validates.
package app
