package app

import (
	"fmt"

	"github.com/nestera/nestera-web/config"
)

var settings config.Store[*Config]

// Load reads, defaults and validates a fresh Config. Options are passed to
// config.LoadConfig after the standard env bindings.
func Load(opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{}
	all := append([]config.LoaderOption{config.WithEnvBindings(EnvBindings()...)}, opts...)
	if err := config.LoadConfig(ServiceName, cfg, all...); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadSettings loads the process settings. Only the first call reads the
// environment; later calls return the same value or the same error.
func LoadSettings(opts ...config.LoaderOption) (*Config, error) {
	return settings.Load(func() (*Config, error) {
		return Load(opts...)
	})
}

// Settings returns the loaded process settings. Treat the value as
// read-only. It panics before a successful LoadSettings.
func Settings() *Config {
	return settings.Get()
}
