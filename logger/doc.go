// Package logger provides structured logging backed by zerolog.
//
// Loggers are configured from the service config (level, format, output)
// and carry structured fields as plain maps:
//
//	log := logger.WithComponent("site")
//	log.Info("Landing page rendered", map[string]interface{}{"faq_open": 2})
//
// A process-wide logger is installed by Init during bootstrap; the
// package-level Debug/Info/Warn/Error helpers delegate to it.
package logger
