package server

import (
	"github.com/nestera/nestera-web/server/middleware"
)

// Defaults for Config.
const (
	DefaultPort         = 3000
	DefaultMaxBodySize  = "1MB"
	DefaultReadTimeout  = 15 // seconds
	DefaultWriteTimeout = 15 // seconds
	DefaultIdleTimeout  = 60 // seconds
)

// Config holds HTTP server settings. Timeouts are in seconds.
type Config struct {
	Host         string                `yaml:"host" mapstructure:"host"`
	Port         int                   `yaml:"port" mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout  int                   `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout int                   `yaml:"write_timeout" mapstructure:"write_timeout" validate:"gte=0"`
	IdleTimeout  int                   `yaml:"idle_timeout" mapstructure:"idle_timeout" validate:"gte=0"`
	MaxBodySize  string                `yaml:"max_body_size" mapstructure:"max_body_size" validate:"size"`
	CORS         middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

func orDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

func orDefaultList(v *[]string, def ...string) {
	if len(*v) == 0 {
		*v = def
	}
}

// ApplyDefaults fills unset fields. CORS defaults to any origin with the
// read-only methods the site serves.
func (c *Config) ApplyDefaults() {
	orDefault(&c.Port, DefaultPort)
	orDefault(&c.ReadTimeout, DefaultReadTimeout)
	orDefault(&c.WriteTimeout, DefaultWriteTimeout)
	orDefault(&c.IdleTimeout, DefaultIdleTimeout)
	orDefault(&c.MaxBodySize, DefaultMaxBodySize)
	orDefaultList(&c.CORS.AllowedOrigins, "*")
	orDefaultList(&c.CORS.AllowedMethods, "GET", "HEAD", "OPTIONS")
	orDefaultList(&c.CORS.AllowedHeaders, "Origin", "Content-Type", "Accept")
}
