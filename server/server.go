package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/server/middleware"
)

// ShutdownTimeout bounds the drain of in-flight requests on Stop.
const ShutdownTimeout = 5 * time.Second

// Server serves a Gin engine over HTTP/1.1 and cleartext HTTP/2.
type Server struct {
	config Config
	engine *gin.Engine
	http   *http.Server
	log    *logger.Logger

	mu sync.RWMutex
	ln net.Listener
}

// New builds the server without middleware or routes. Gin runs in debug
// mode only when the global log level is debug or lower.
func New(cfg Config, log *logger.Logger) *Server {
	mode := gin.ReleaseMode
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		mode = gin.DebugMode
	}
	gin.SetMode(mode)

	engine := gin.New()
	seconds := func(n int) time.Duration { return time.Duration(n) * time.Second }
	return &Server{
		config: cfg,
		engine: engine,
		http: &http.Server{
			Addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler: h2c.NewHandler(engine, &http2.Server{
				MaxConcurrentStreams: 250,
				IdleTimeout:          2 * time.Minute,
			}),
			ReadTimeout:  seconds(cfg.ReadTimeout),
			WriteTimeout: seconds(cfg.WriteTimeout),
			IdleTimeout:  seconds(cfg.IdleTimeout),
		},
		log: log.WithComponent("server"),
	}
}

// GinEngine exposes the engine for route registration.
func (s *Server) GinEngine() *gin.Engine { return s.engine }

// Handler is the root handler, h2c included, for driving the server with
// httptest without binding a port.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Addr is the configured listen address.
func (s *Server) Addr() string { return s.http.Addr }

// ApplyMiddleware installs, in order: recovery, request id, extra (such as
// tracing), CORS, the body limit and request logging. Unmatched routes get
// the NOT_FOUND envelope.
func (s *Server) ApplyMiddleware(extra ...gin.HandlerFunc) {
	chain := []gin.HandlerFunc{middleware.Recovery(s.log), middleware.RequestID()}
	chain = append(chain, extra...)
	chain = append(chain, middleware.CORS(s.config.CORS))
	if s.config.MaxBodySize != "" {
		chain = append(chain, middleware.BodyLimit(s.config.MaxBodySize))
	}
	chain = append(chain, middleware.RequestLogger(s.log))
	s.engine.Use(chain...)
	s.engine.NoRoute(NotFound)
}

// Start binds the address and serves in the background. A bind failure is
// returned before Start does, so a busy port fails startup.
func (s *Server) Start(context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.http.Addr, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Serve failed", logger.ErrorFields("serve", err))
		}
	}()
	s.log.Info("HTTP server listening", map[string]interface{}{"addr": ln.Addr().String()})
	return nil
}

// Stop drains in-flight requests for at most ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	err := s.http.Shutdown(ctx)

	s.mu.Lock()
	s.ln = nil
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("HTTP server stopped")
	return nil
}

// ListenAddr is the bound address while serving, or "". With port 0 it
// reveals the port the kernel picked.
func (s *Server) ListenAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Serving reports whether the listener is bound.
func (s *Server) Serving() bool { return s.ListenAddr() != "" }
