package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/server/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func jsonLogger() (*logger.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", buf), buf
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)
	return rr
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestRecovery_NoPanic(t *testing.T) {
	log, _ := jsonLogger()
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rr := serve(r, httptest.NewRequest("GET", "/", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRecovery_Panic(t *testing.T) {
	log, buf := jsonLogger()
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.GET("/boom", func(c *gin.Context) { panic("test panic") })

	rr := serve(r, httptest.NewRequest("GET", "/boom", http.NoBody))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Error.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected error code: %s", body.Error.Code)
	}
	if !strings.Contains(buf.String(), "Panic recovered") {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
}

// ---------------------------------------------------------------------------
// RequestID
// ---------------------------------------------------------------------------

func TestRequestID_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusOK)
	})

	rr := serve(r, httptest.NewRequest("GET", "/", http.NoBody))
	got := rr.Header().Get(middleware.RequestIDHeader)
	if got == "" {
		t.Fatal("expected X-Request-Id in response headers")
	}
	if seen != got {
		t.Errorf("expected context id %q to match header %q", seen, got)
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "custom-id-123")
	rr := serve(r, req)

	if got := rr.Header().Get(middleware.RequestIDHeader); got != "custom-id-123" {
		t.Fatalf("expected custom-id-123, got %s", got)
	}
}

// ---------------------------------------------------------------------------
// CORS
// ---------------------------------------------------------------------------

func corsEngine(cfg middleware.CORSConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(cfg))
	r.GET("/api/faq", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.OPTIONS("/api/faq", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	return r
}

func TestCORS_AllowedOrigin(t *testing.T) {
	r := corsEngine(middleware.CORSConfig{
		AllowedOrigins: []string{"https://nestera.io"},
		AllowedMethods: []string{"GET", "HEAD"},
	})

	req := httptest.NewRequest("GET", "/api/faq", http.NoBody)
	req.Header.Set("Origin", "https://nestera.io")
	rr := serve(r, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://nestera.io" {
		t.Fatalf("allow origin = %q", got)
	}
	if got := rr.Header().Get("Vary"); got != "Origin" {
		t.Errorf("vary = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Errorf("methods belong to preflight replies only, got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	r := corsEngine(middleware.CORSConfig{AllowedOrigins: []string{"https://nestera.io"}})

	req := httptest.NewRequest("GET", "/api/faq", http.NoBody)
	req.Header.Set("Origin", "https://evil.example")
	rr := serve(r, req)

	if rr.Code != http.StatusOK {
		t.Errorf("simple request should still reach the handler, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow origin, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := corsEngine(middleware.CORSConfig{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	req := httptest.NewRequest("OPTIONS", "/api/faq", http.NoBody)
	req.Header.Set("Origin", "https://app.nestera.io")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := serve(r, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rr.Code)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":      "https://app.nestera.io",
		"Access-Control-Allow-Methods":     "GET, HEAD, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "600",
	}
	for k, v := range want {
		if got := rr.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestCORS_PlainOptionsReachesHandler(t *testing.T) {
	r := corsEngine(middleware.CORSConfig{AllowedOrigins: []string{"*"}})

	req := httptest.NewRequest("OPTIONS", "/api/faq", http.NoBody)
	req.Header.Set("Origin", "https://app.nestera.io")
	if rr := serve(r, req); rr.Code != http.StatusTeapot {
		t.Errorf("OPTIONS without a request method should not be treated as preflight, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// RequestLogger
// ---------------------------------------------------------------------------

func TestRequestLogger_LogsByStatus(t *testing.T) {
	log, buf := jsonLogger()
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest("GET", "/missing?x=1", http.NoBody))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q", buf.String())
	}
	if entry["level"] != "warn" {
		t.Errorf("expected warn for 404, got %v", entry["level"])
	}
	if entry["path"] != "/missing?x=1" {
		t.Errorf("expected path with query, got %v", entry["path"])
	}
	if entry[logger.FieldRequestID] == "" {
		t.Error("expected request id in log entry")
	}
}

func TestRequestLogger_SkipsHealthAndStatic(t *testing.T) {
	log, buf := jsonLogger()
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.GET("/health/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/static/*filepath", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest("GET", "/health/live", http.NoBody))
	serve(r, httptest.NewRequest("GET", "/static/site.css", http.NoBody))

	if buf.Len() != 0 {
		t.Errorf("expected no log output, got %s", buf.String())
	}
}

// ---------------------------------------------------------------------------
// BodyLimit
// ---------------------------------------------------------------------------

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(middleware.BodyLimit("1KB"))
	r.POST("/upload", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	small := serve(r, httptest.NewRequest("POST", "/upload", strings.NewReader("tiny")))
	if small.Code != http.StatusOK {
		t.Fatalf("expected 200 for small body, got %d", small.Code)
	}

	large := serve(r, httptest.NewRequest("POST", "/upload", strings.NewReader(strings.Repeat("x", 2048))))
	if large.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for large body, got %d", large.Code)
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(large.Body.Bytes(), &resp); err != nil || resp.Error.Code != "PAYLOAD_TOO_LARGE" {
		t.Errorf("body = %s", large.Body.String())
	}

	// Unknown length: the cap applies while the handler reads.
	req := httptest.NewRequest("POST", "/upload", strings.NewReader(strings.Repeat("x", 2048)))
	req.ContentLength = -1
	if rr := serve(r, req); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected read failure past the cap, got %d", rr.Code)
	}
}

func TestRequestID_ReplacesUnprintable(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, bad := range []string{"has space", strings.Repeat("x", 129)} {
		req := httptest.NewRequest("GET", "/", http.NoBody)
		req.Header.Set(middleware.RequestIDHeader, bad)
		rr := serve(r, req)
		if got := rr.Header().Get(middleware.RequestIDHeader); got == bad || got == "" {
			t.Errorf("expected a generated id for %q, got %q", bad, got)
		}
	}
}

func TestRequestLogger_LogsFailedProbe(t *testing.T) {
	log, buf := jsonLogger()
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.GET("/health/ready", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	serve(r, httptest.NewRequest("GET", "/health/ready", http.NoBody))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q", buf.String())
	}
	if entry["level"] != "error" || entry["route"] != "/health/ready" {
		t.Errorf("unexpected entry %v", entry)
	}
}
