package app

import (
	"strings"

	"github.com/nestera/nestera-web/config"
	apperrors "github.com/nestera/nestera-web/errors"
	"github.com/nestera/nestera-web/modules/blockchain"
	"github.com/nestera/nestera-web/modules/site"
	"github.com/nestera/nestera-web/observability"
	"github.com/nestera/nestera-web/server"
	"github.com/nestera/nestera-web/validation"
	"github.com/nestera/nestera-web/version"
)

// ServiceName is the default service name and the config directory name
// under cmd/.
const ServiceName = "nestera-web"

// Config is the full application configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Blockchain    blockchain.Config    `yaml:"blockchain" mapstructure:"blockchain"`
	Site          site.Config          `yaml:"site" mapstructure:"site"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills every section. It is idempotent.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Version == "" {
		c.Version = version.Version
	}
	c.Server.ApplyDefaults()
	c.Blockchain.ApplyDefaults()
	c.Site.ApplyDefaults(c.Server.Port)
	c.Observability.ApplyDefaults()
}

// Validate checks every section and reports all failures in one
// INVALID_CONFIG error. Details["fields"] lists the failing keys.
func (c *Config) Validate() error {
	var (
		messages []string
		fields   []validation.FieldError
	)

	sections := []struct {
		key   string
		value any
	}{
		{"", &c.ServiceConfig},
		{"server", &c.Server},
		{"blockchain", &c.Blockchain},
		{"site", &c.Site},
		{"observability", &c.Observability},
	}
	for _, s := range sections {
		err := validation.ValidateKeys(s.key, s.value)
		if err == nil {
			continue
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			messages = append(messages, err.Error())
			continue
		}
		messages = append(messages, appErr.Message)
		if fe, ok := appErr.Details["fields"].([]validation.FieldError); ok {
			fields = append(fields, fe...)
		}
	}

	if len(messages) == 0 {
		return nil
	}
	appErr := apperrors.InvalidConfig(strings.Join(messages, "; "))
	if len(fields) > 0 {
		appErr.WithDetail("fields", fields)
	}
	return appErr
}

// EnvBindings are the environment aliases recognised on top of the
// generated variants. The first set variable of each binding wins.
func EnvBindings() []config.EnvBinding {
	return []config.EnvBinding{
		config.Bind("server.port", "PORT"),
		config.Bind("server.host", "HOST"),
		config.Bind("environment", "NODE_ENV", "APP_ENV"),
		config.Bind("name", "APP_NAME"),
		config.Bind("logging.level", "LOG_LEVEL"),
		config.Bind("logging.format", "LOG_FORMAT"),
		config.Bind("blockchain.network", "STELLAR_NETWORK"),
		config.Bind("blockchain.rpc_url", "SOROBAN_RPC_URL"),
		config.Bind("blockchain.horizon_url", "HORIZON_URL"),
		config.Bind("blockchain.contract_id", "CONTRACT_ID"),
		config.Bind("site.base_url", "SITE_BASE_URL"),
		config.Bind("observability.enabled", "OTEL_ENABLED"),
		config.Bind("observability.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}
