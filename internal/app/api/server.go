package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rochi88/go-exercise/internal/app/config"
	playgroundHttp "github.com/rochi88/go-exercise/internal/pkg/playground/delivery/http"
	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/shared/metrics"
	customMiddleware "github.com/rochi88/go-exercise/internal/shared/middleware"
	"github.com/rochi88/go-exercise/internal/shared/utils"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *gin.Engine
	config *config.Config
	logger *logger.Logger
}

// ServerOptions holds the server dependencies
type ServerOptions struct {
	Config              *config.Config
	Logger              *logger.Logger
	PlaygroundHandler   *playgroundHttp.PlaygroundHandler
	LoggingMiddleware   *customMiddleware.LoggingMiddleware
	RecoveryMiddleware  *customMiddleware.RecoveryMiddleware
	RequestIDMiddleware *customMiddleware.RequestIDMiddleware
	Metrics             *metrics.Metrics
	// Health reports readiness; nil means always ready
	Health func(ctx context.Context) error
}

// NewServer creates a new HTTP server
func NewServer(opts *ServerOptions) *Server {
	r := gin.New()

	// Add custom middleware
	if opts.RequestIDMiddleware != nil {
		r.Use(opts.RequestIDMiddleware.Middleware())
	}
	r.Use(opts.LoggingMiddleware.GinLogRequest)
	r.Use(opts.RecoveryMiddleware.GinRecover)

	// Add metrics middleware if available
	if opts.Metrics != nil {
		r.Use(opts.Metrics.GinMiddleware())
	}

	// Set up routes
	setupRoutes(r, opts)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Config.ServerPort),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		server: srv,
		router: r,
		config: opts.Config,
		logger: opts.Logger.Named("server"),
	}
}

// setupRoutes configures all the routes for the application
func setupRoutes(r *gin.Engine, opts *ServerOptions) {
	// API routes under /api/v1
	apiV1 := r.Group("/api/v1")
	{
		opts.PlaygroundHandler.RegisterGinRoutes(apiV1)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if opts.Health != nil {
			if err := opts.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	notFound := utils.NewResponseHandler(opts.Logger.Named("routes"))
	r.NoRoute(func(c *gin.Context) {
		notFound.GinNotFound(c, "Route not found")
	})

	// Metrics endpoint (if metrics are enabled)
	if opts.Metrics != nil && opts.Config.MetricsEnabled {
		r.GET(opts.Config.MetricsPath, opts.Metrics.GinMetricsHandler())
	}
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info(fmt.Sprintf("Starting HTTP server on port %d", s.config.ServerPort))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
