package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/app/config"
	playgroundHttp "github.com/rochi88/go-exercise/internal/pkg/playground/delivery/http"
	playgroundRepository "github.com/rochi88/go-exercise/internal/pkg/playground/repository"
	playgroundService "github.com/rochi88/go-exercise/internal/pkg/playground/service"
	"github.com/rochi88/go-exercise/internal/scheduler"
	schedulerServices "github.com/rochi88/go-exercise/internal/scheduler/services"
	"github.com/rochi88/go-exercise/internal/shared/interfaces"
	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/shared/metrics"
	"github.com/rochi88/go-exercise/internal/shared/middleware"
)

var _ interfaces.Container = (*Container)(nil)

// Container holds all application dependencies
type Container struct {
	// Configuration and Infrastructure
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	// Repositories
	HandleRepository *playgroundRepository.MemoryHandleRepository

	// Services
	PlaygroundService *playgroundService.DefaultPlaygroundService

	// Scheduling
	Scheduler *scheduler.Scheduler
	SweepJob  *schedulerServices.PlaygroundSweepJob

	// HTTP Handlers
	PlaygroundHandler *playgroundHttp.PlaygroundHandler

	// Middleware
	LoggingMiddleware   *middleware.LoggingMiddleware
	RecoveryMiddleware  *middleware.RecoveryMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware

	startedAt time.Time
}

// ContainerOptions defines configuration options for the container
type ContainerOptions struct {
	ConfigPath string
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts ContainerOptions) (*Container, error) {
	container := &Container{startedAt: time.Now()}

	// Load configuration first
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	container.Config = cfg

	// Initialize logger
	appLogger, err := logger.New(logger.Options{Environment: cfg.Environment, LogDir: cfg.LogDir})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	container.Logger = appLogger

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize metrics (if enabled)
	if cfg.MetricsEnabled {
		container.Metrics = metrics.New(appLogger)
	}

	// Playground
	container.HandleRepository = playgroundRepository.NewMemoryHandleRepository(cfg.PlaygroundMaxHandles)
	container.PlaygroundService = playgroundService.NewPlaygroundService(container.HandleRepository, appLogger, container.Metrics)
	container.PlaygroundHandler = playgroundHttp.NewPlaygroundHandler(container.PlaygroundService, appLogger)

	// Middleware
	container.LoggingMiddleware = middleware.NewLoggingMiddleware(appLogger)
	container.RecoveryMiddleware = middleware.NewRecoveryMiddleware(appLogger)
	container.RequestIDMiddleware = middleware.NewRequestIDMiddleware()

	// Scheduler
	container.Scheduler = scheduler.NewScheduler(cron.New(), appLogger)
	container.SweepJob = schedulerServices.NewPlaygroundSweepJob(
		container.PlaygroundService, cfg.PlaygroundSweepCron, cfg.PlaygroundIdleTTL, appLogger)
	if err := container.Scheduler.RegisterJobs(container.SweepJob); err != nil {
		return nil, fmt.Errorf("failed to register jobs: %w", err)
	}

	cfg.Watch(container.applyConfig)

	appLogger.Info("Container initialized",
		zap.String("environment", cfg.Environment),
		zap.Int("playground_max_handles", cfg.PlaygroundMaxHandles),
		zap.Duration("playground_idle_ttl", cfg.PlaygroundIdleTTL))

	return container, nil
}

// applyConfig applies the settings that can change without a restart
func (c *Container) applyConfig(cfg *config.Config, err error) {
	if err != nil {
		c.Logger.Warn("Ignoring invalid config reload", zap.Error(err))
		return
	}

	c.HandleRepository.SetLimit(cfg.PlaygroundMaxHandles)
	c.SweepJob.SetIdleTTL(cfg.PlaygroundIdleTTL)
	c.Logger.Info("Config reloaded",
		zap.Int("playground_max_handles", cfg.PlaygroundMaxHandles),
		zap.Duration("playground_idle_ttl", cfg.PlaygroundIdleTTL))
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config { return c.Config }

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger { return c.Logger }

// GetMetrics returns the metrics collector, nil when disabled
func (c *Container) GetMetrics() *metrics.Metrics { return c.Metrics }

// Health checks that the playground can be listed and records uptime
func (c *Container) Health(ctx context.Context) error {
	if _, err := c.PlaygroundService.List(ctx); err != nil {
		return fmt.Errorf("playground unavailable: %w", err)
	}
	if c.Metrics != nil {
		c.Metrics.RecordUptime(time.Since(c.startedAt))
	}
	return nil
}

// Close stops background work and flushes logs
func (c *Container) Close() error {
	c.Scheduler.Stop()
	_ = c.Logger.Sync()
	return nil
}
