package config

import (
	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/validation"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// ServiceConfig holds the fields every service shares. Application configs
// embed it with mapstructure ",squash" and add their own sections.
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production test"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig gives bootstrap access to the embedded base config.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults defaults the environment to development, which also turns
// on Debug, and hands the service name to the logger.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.Environment == EnvDevelopment {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate reports every failing key, e.g. "name: is required" or
// "logging.level: must be one of: ...".
func (c *ServiceConfig) Validate() error {
	return validation.Validate(c)
}

func (c *ServiceConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}
