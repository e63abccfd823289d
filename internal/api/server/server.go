package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/api/middleware"
	"github.com/feral-file/ff-ledger-indexer/internal/api/rest"
	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
	RateLimit    middleware.RateLimitConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	metrics    *metrics.Metrics
	limiter    adapter.RedisRateLimiter
	httpServer *http.Server
}

// New creates a new API server.
// limiter may be nil to disable rate limiting.
func New(cfg Config, exec executor.Executor, m *metrics.Metrics, limiter adapter.RedisRateLimiter) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		metrics:  m,
		limiter:  limiter,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Prometheus scrape endpoint
	if s.metrics.IsEnabled() {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	var public []gin.HandlerFunc
	if s.limiter != nil && s.config.RateLimit.RequestsPerMinute > 0 {
		public = append(public, middleware.RateLimit(s.limiter, s.config.RateLimit))
	}

	// Setup REST routes
	rest.SetupRoutes(router, rest.NewHandler(s.config.Debug, s.executor), s.config.Auth, public...)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("rate_limited", s.limiter != nil),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
