// Package validation provides input and configuration validation.
//
// Struct tag validation (go-playground/validator) backs the configuration
// schema; failures are reported by config key:
//
//	type Config struct {
//	    Port int `mapstructure:"port" validate:"min=1,max=65535"`
//	}
//	err := validation.ValidateKeys("server", &cfg) // "server.port: must be at least 1"
//
// Params checks request parameters:
//
//	if appErr := validation.NewParams().Int("open", raw, -1, 3, &idx).Err(); appErr != nil { ... }
package validation
