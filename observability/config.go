package observability

import "time"

// Defaults for Config.
const (
	DefaultEndpoint       = "localhost:4318"
	DefaultSampleRate     = 1.0
	DefaultMetricInterval = 15 // seconds
)

// Config enables OpenTelemetry export over OTLP/HTTP. An unset SampleRate
// means DefaultSampleRate; an explicit 0 samples nothing.
type Config struct {
	Enabled        bool     `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string   `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure       bool     `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     *float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1"`
	MetricInterval int      `yaml:"metric_interval" mapstructure:"metric_interval" validate:"gte=0"` // seconds
}

// ApplyDefaults sets default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.SampleRate == nil {
		rate := DefaultSampleRate
		c.SampleRate = &rate
	}
	if c.MetricInterval == 0 {
		c.MetricInterval = DefaultMetricInterval
	}
}

func (c *Config) rate() float64 {
	if c.SampleRate == nil {
		return DefaultSampleRate
	}
	return *c.SampleRate
}

func (c *Config) interval() time.Duration {
	return time.Duration(c.MetricInterval) * time.Second
}

// Identity names the service on every exported span and metric.
type Identity struct {
	Service     string
	Version     string
	Environment string
}
