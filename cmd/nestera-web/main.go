// Command nestera-web serves the Nestera landing page and its API.
package main

import (
	"context"

	"github.com/nestera/nestera-web/app"
	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/version"
)

func main() {
	log := logger.NewDefault(app.ServiceName)
	log.Info("Loading configuration", logger.Fields("build", version.Short()))

	cfg, err := app.LoadSettings()
	if err != nil {
		log.Fatal("Configuration rejected", logger.ErrorFields("load_settings", err))
	}

	application, err := app.Compose(cfg, app.DefaultModules(cfg))
	if err != nil {
		log.Fatal("Composition failed", logger.ErrorFields("compose", err))
	}

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Fatal("Application stopped with error", logger.ErrorFields("run", err))
	}
}
