package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nestera/nestera-web/errors"
	"github.com/nestera/nestera-web/logger"
)

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(&logger.Config{Level: "error", Format: "json"}, "test", io.Discard)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := Config{Host: "127.0.0.1"}
	cfg.ApplyDefaults()
	cfg.Port = 0
	s := New(cfg, quietLogger())
	gin.SetMode(gin.TestMode)
	return s
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.MaxBodySize != "1MB" {
		t.Errorf("expected default body size 1MB, got %q", cfg.MaxBodySize)
	}
	if cfg.ReadTimeout != 15 || cfg.WriteTimeout != 15 || cfg.IdleTimeout != 60 {
		t.Errorf("unexpected timeouts: %+v", cfg)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS default, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestStartStopAndHealth(t *testing.T) {
	s := newTestServer(t)
	s.GinEngine().GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	comp := NewComponent(s)

	if h := comp.Health(context.Background()); h.Status != "unhealthy" {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}

	if err := comp.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	addr := s.ListenAddr()
	if addr == "" {
		t.Fatal("expected bound address")
	}
	if h := comp.Health(context.Background()); h.Status != "healthy" {
		t.Errorf("expected healthy while serving, got %s", h.Status)
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "pong" {
		t.Errorf("expected pong, got %q", body)
	}

	if err := comp.Stop(context.Background()); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if s.Serving() {
		t.Error("expected server to stop serving")
	}
}

func TestStartFailsOnBusyPort(t *testing.T) {
	first := newTestServer(t)
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer first.Stop(context.Background())

	cfg := first.config
	var port int
	fmt.Sscanf(first.ListenAddr()[strings.LastIndex(first.ListenAddr(), ":")+1:], "%d", &port)
	cfg.Port = port
	second := New(cfg, quietLogger())
	if err := second.Start(context.Background()); err == nil {
		second.Stop(context.Background())
		t.Fatal("expected bind error on busy port")
	}
}

func TestApplyMiddlewareNotFoundEnvelope(t *testing.T) {
	s := newTestServer(t)
	s.ApplyMiddleware()

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/nope", http.NoBody))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["error"]["code"] != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND code, got %v", body["error"]["code"])
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected request id header from middleware stack")
	}
}

func TestApplyMiddlewareRunsExtras(t *testing.T) {
	s := newTestServer(t)
	called := false
	s.ApplyMiddleware(func(c *gin.Context) {
		called = true
		c.Next()
	})
	s.GinEngine().GET("/x", func(c *gin.Context) { RespondOK(c, "ok") })

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/x", http.NoBody))
	if !called {
		t.Error("expected extra middleware to run")
	}
	if !strings.Contains(rr.Body.String(), `"data":"ok"`) {
		t.Errorf("unexpected body %s", rr.Body.String())
	}
}

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"app error", apperrors.InvalidInput("open", "out of range"), http.StatusBadRequest},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			RespondWithError(c, tc.err)
			if rr.Code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, rr.Code)
			}
		})
	}
}

func TestRoutesSystemLast(t *testing.T) {
	s := newTestServer(t)
	noop := func(c *gin.Context) {}
	s.GinEngine().GET("/health", noop)
	s.GinEngine().GET("/api", noop)
	s.GinEngine().GET("/", noop)

	routes := NewComponent(s).Routes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
	if routes[0].Path != "/" || routes[1].Path != "/api" || routes[2].Path != "/health" {
		t.Errorf("unexpected order: %v", routes)
	}
	if !strings.HasSuffix(routes[2].Handler, "(system)") {
		t.Errorf("expected system label, got %q", routes[2].Handler)
	}
}

func TestFormatHandlerName(t *testing.T) {
	tests := map[string]string{
		"github.com/nestera/nestera-web/modules/site.(*Module).home-fm":  "Module.home",
		"github.com/nestera/nestera-web/server/endpoint.Health.func1":    "health",
		"github.com/nestera/nestera-web/app.rootController.describe-fm": "rootController.describe",
	}
	for in, want := range tests {
		if got := formatHandlerName(in); got != want {
			t.Errorf("formatHandlerName(%q) = %q, want %q", in, got, want)
		}
	}
}
