package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	ansiReset = "\033[0m"
	ansiBlue  = "\033[34m"
)

type levelStyle struct {
	tag   string
	color string
}

var levelStyles = map[string]levelStyle{
	"trace": {"TRC", "\033[90m"},
	"debug": {"DBG", "\033[36m"},
	"info":  {"INF", "\033[32m"},
	"warn":  {"WRN", "\033[33m"},
	"error": {"ERR", "\033[31m"},
	"fatal": {"FTL", "\033[35m"},
}

func paint(s, color string, noColor bool) string {
	if noColor || color == "" {
		return s
	}
	return color + s + ansiReset
}

// consoleWriter renders "15:04:05 [NES][INF] message key:value". The
// service prefix is the upper-cased first three letters of the name.
func consoleWriter(cfg *Config, serviceName string, w io.Writer) zerolog.ConsoleWriter {
	prefix := ""
	if len(serviceName) >= 3 && serviceName != "default" {
		prefix = paint("["+strings.ToUpper(serviceName[:3])+"]", ansiBlue, cfg.NoColor)
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			raw := strings.ToLower(fmt.Sprint(i))
			style, ok := levelStyles[raw]
			if !ok {
				style = levelStyle{tag: strings.ToUpper(raw)}
			}
			return prefix + paint("["+style.tag+"]", style.color, cfg.NoColor)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprint(i) + ":"
		},
	}
}
