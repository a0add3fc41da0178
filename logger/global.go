package logger

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var global atomic.Pointer[Logger]

// Init applies defaults to cfg, sets the zerolog global level and installs
// the process-wide logger.
func Init(cfg *Config) {
	cfg.ApplyDefaults()
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	name := cfg.ServiceName
	if name == "" {
		name = "default"
	}
	global.Store(New(cfg, name))
}

func SetGlobalLogger(l *Logger) { global.Store(l) }

// GetGlobalLogger returns the process-wide logger, installing a default
// console logger on first use.
func GetGlobalLogger() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	global.CompareAndSwap(nil, NewDefault("default"))
	return global.Load()
}

func Debug(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Debug(msg, fields...) }
func Info(msg string, fields ...map[string]interface{})  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...map[string]interface{})  { GetGlobalLogger().Warn(msg, fields...) }
func Error(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Error(msg, fields...) }
func Fatal(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Fatal(msg, fields...) }

// WithComponent tags the global logger with a component name.
func WithComponent(name string) *Logger {
	return GetGlobalLogger().WithComponent(name)
}
