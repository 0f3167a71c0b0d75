// Package server exposes the chat engine over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"amy/internal/command"
	"amy/internal/intent"
	"amy/internal/logging"
	"amy/internal/observability"
	"amy/internal/registry"
	"amy/internal/resolver"
	"amy/internal/session"
)

const serviceVersion = "1.0.0"

// Config holds the HTTP-level settings.
type Config struct {
	Host         string
	Port         int
	Debug        bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the standard server settings.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8000,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

// Deps are the engine pieces the server orchestrates. Resolver is nil in
// demo mode; everything else is required.
type Deps struct {
	Registry   *registry.Registry
	Matcher    *intent.Matcher
	Resolver   *resolver.Resolver
	Normalizer *command.Normalizer
	Store      *session.Store
	Metrics    *observability.Metrics
	PromReg    *prometheus.Registry
	Logger     logging.Logger
}

// Server wires the chat pipeline to gin.
type Server struct {
	deps       Deps
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
	mode       string
}

// New builds the HTTP server. mode is "ai" or "demo" and only informational.
func New(cfg Config, deps Deps, mode string) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
	engine.Use(cors.New(corsConfig))

	s := &Server{
		deps:   deps,
		engine: engine,
		logger: logging.OrNop(deps.Logger),
		mode:   mode,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/components", s.handleComponents)
	s.engine.POST("/chat", s.handleChat)
	s.engine.POST("/reset", s.handleReset)

	if s.deps.PromReg != nil {
		s.deps.PromReg.MustRegister(collectors.NewGoCollector())
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.PromReg, promhttp.HandlerOpts{})))
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("serving on %s (mode: %s)", s.httpServer.Addr, s.mode)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests with a bounded grace period.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
