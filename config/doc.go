// Package config loads service configuration.
//
// Sources are applied in increasing precedence: a config.yml file found in
// the standard locations, a .env file loaded with godotenv, the process
// environment, and finally explicit aliases registered with WithEnvBindings.
//
//	var cfg AppConfig
//	err := config.LoadConfig("nestera-web", &cfg,
//	    config.WithEnvBindings(config.Bind("server.port", "PORT")))
//
// Store keeps a loaded value for the life of the process.
package config
