package bootstrap

import "github.com/nestera/nestera-web/config"

// Config is satisfied by any struct embedding config.ServiceConfig; the
// embedding type overrides ApplyDefaults and Validate to cover its own
// sections.
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}
