package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FormatPretty is accepted as an alias of the console format.
const FormatPretty = "pretty"

// Logger is a zerolog logger bound to a service name. Fields are passed as
// maps so call sites stay independent of zerolog.
type Logger struct {
	zl      zerolog.Logger
	service string
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

// New creates a logger writing to the configured output.
func New(cfg *Config, serviceName string) *Logger {
	var w io.Writer = os.Stdout
	if strings.EqualFold(cfg.Output, "stderr") {
		w = os.Stderr
	}
	return NewWithWriter(cfg, serviceName, w)
}

// NewWithWriter creates a logger writing to w. Console and pretty formats
// are rendered for humans; anything else is one JSON object per line that
// carries a "service" field.
func NewWithWriter(cfg *Config, serviceName string, w io.Writer) *Logger {
	var ctx zerolog.Context
	switch strings.ToLower(cfg.Format) {
	case "console", FormatPretty:
		ctx = zerolog.New(consoleWriter(cfg, serviceName, w)).With()
	default:
		ctx = zerolog.New(w).With().Str("service", serviceName)
	}
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return &Logger{zl: ctx.Logger().Level(parseLevel(cfg.Level)), service: serviceName}
}

// NewDefault creates a console logger at info level on stdout.
func NewDefault(serviceName string) *Logger {
	return New(&Config{Level: "info", Format: "console", Output: "stdout", Timestamp: true}, serviceName)
}

func (l *Logger) derive(ctx zerolog.Context) *Logger {
	return &Logger{zl: ctx.Logger(), service: l.service}
}

// WithComponent tags every line with the component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.derive(l.zl.With().Str(FieldComponent, name))
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return l.derive(l.zl.With().Fields(fields))
}

func (l *Logger) WithError(err error) *Logger {
	return l.derive(l.zl.With().Err(err))
}

// Service returns the service name the logger was created for.
func (l *Logger) Service() string { return l.service }

// Zerolog exposes the underlying logger.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

func emit(e *zerolog.Event, msg string, fields []map[string]interface{}) {
	for _, f := range fields {
		e = e.Fields(f)
	}
	e.Msg(msg)
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Error(), msg, fields)
}

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Fatal(), msg, fields)
}
