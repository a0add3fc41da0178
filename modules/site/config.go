package site

import (
	"fmt"
	"strings"
)

// DefaultLaunchURL is where the primary call to action points.
const DefaultLaunchURL = "/app"

// Config holds the landing page settings.
type Config struct {
	// BaseURL is the public origin used for canonical links.
	BaseURL   string `yaml:"base_url" mapstructure:"base_url" validate:"url"`
	LaunchURL string `yaml:"launch_url" mapstructure:"launch_url" validate:"required"`
}

// ApplyDefaults derives BaseURL from the listen port when unset.
func (c *Config) ApplyDefaults(port int) {
	if c.BaseURL == "" {
		c.BaseURL = fmt.Sprintf("http://localhost:%d", port)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.LaunchURL == "" {
		c.LaunchURL = DefaultLaunchURL
	}
}
