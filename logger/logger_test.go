package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func jsonLogger(level string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: level, Format: "json", Output: "stdout"}, "nestera-web", &buf)
	return l, &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line, got nothing")
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	return m
}

func restoreGlobal(t *testing.T) {
	t.Helper()
	prev := global.Load()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		global.Store(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	l, buf := jsonLogger("info")
	l.Info("page rendered", map[string]interface{}{"faq_open": 2})

	m := decodeLine(t, buf)
	if m["message"] != "page rendered" {
		t.Errorf("unexpected message: %v", m["message"])
	}
	if m["service"] != "nestera-web" {
		t.Errorf("expected service field, got %v", m["service"])
	}
	if m["faq_open"] != float64(2) {
		t.Errorf("expected faq_open=2, got %v", m["faq_open"])
	}
}

func TestLevelFiltersPerLogger(t *testing.T) {
	l, buf := jsonLogger("warn")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}
	l.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("expected warn to be written")
	}
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	l, buf := jsonLogger("not-a-level")
	l.Debug("hidden")
	l.Info("shown")
	m := decodeLine(t, buf)
	if m["level"] != "info" {
		t.Errorf("expected info line, got %v", m["level"])
	}
}

func TestWithComponent(t *testing.T) {
	l, buf := jsonLogger("info")
	l.WithComponent("site").Info("hello")
	m := decodeLine(t, buf)
	if m[FieldComponent] != "site" {
		t.Errorf("expected component 'site', got %v", m[FieldComponent])
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l, buf := jsonLogger("info")
	l.WithFields(map[string]interface{}{"key": "value"}).WithError(errors.New("boom")).Error("failed")
	m := decodeLine(t, buf)
	if m["key"] != "value" {
		t.Errorf("expected key=value, got %v", m["key"])
	}
	if m["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", m["error"])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "nestera-web", &buf)
	l.Info("hello", map[string]interface{}{"k": "v"})

	out := buf.String()
	if !strings.Contains(out, "[NES][INF]") {
		t.Errorf("expected service and level tag in %q", out)
	}
	if !strings.Contains(out, "k:") {
		t.Errorf("expected field name in %q", out)
	}
}

func TestInitSetsGlobal(t *testing.T) {
	restoreGlobal(t)

	cfg := Config{Level: "info", Format: "console", ServiceName: "nestera-web"}
	Init(&cfg)
	gl := GetGlobalLogger()
	if gl == nil {
		t.Fatal("expected global logger to be set after Init")
	}
	if gl.Service() != "nestera-web" {
		t.Errorf("expected service name from config, got %q", gl.Service())
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	restoreGlobal(t)

	global.Store(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	restoreGlobal(t)

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	l, buf := jsonLogger("debug")
	SetGlobalLogger(l)
	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("expected 4 lines, got %d", got)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields("op", "render", "items", 4, 99)
	if len(f) != 2 || f["op"] != "render" || f["items"] != 4 {
		t.Errorf("unexpected fields: %v", f)
	}

	ef := ErrorFields("load", errors.New("bad"))
	if ef[FieldOperation] != "load" || ef[FieldError] != "bad" {
		t.Errorf("unexpected error fields: %v", ef)
	}

	df := DurationFields("render", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration: %v", df[FieldDuration])
	}
}
