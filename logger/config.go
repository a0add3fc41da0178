package logger

import (
	"fmt"
	"slices"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	Level       string `yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error fatal"`
	Format      string `yaml:"format" mapstructure:"format" validate:"oneof=json console pretty"`
	Output      string `yaml:"output" mapstructure:"output" validate:"oneof=stdout stderr"`
	NoColor     bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp   bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller      bool   `yaml:"caller" mapstructure:"caller"`
	ServiceName string `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults sets info level console output on stdout with timestamps.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

var allowed = []struct {
	key    string
	values []string
	get    func(*Config) string
}{
	{"level", []string{"trace", "debug", "info", "warn", "error", "fatal"}, func(c *Config) string { return c.Level }},
	{"format", []string{"json", "console", "pretty"}, func(c *Config) string { return c.Format }},
	{"output", []string{"stdout", "stderr"}, func(c *Config) string { return c.Output }},
}

// Validate checks the enumerated fields. Services validate the same rules
// through the struct tags.
func (c *Config) Validate() error {
	for _, a := range allowed {
		if v := a.get(c); !slices.Contains(a.values, v) {
			return fmt.Errorf("logging.%s must be one of %s (got %q)", a.key, strings.Join(a.values, ", "), v)
		}
	}
	return nil
}
