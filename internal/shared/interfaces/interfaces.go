package interfaces

import (
	"context"

	"github.com/rochi88/go-exercise/internal/app/config"
	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/shared/metrics"
)

// Container defines the interface for dependency injection container
type Container interface {
	// Configuration and core services
	GetConfig() *config.Config
	GetLogger() *logger.Logger
	GetMetrics() *metrics.Metrics

	// Health and lifecycle
	Health(ctx context.Context) error
	Close() error
}

// Repository is implemented by every in-memory store; Count feeds the
// live gauges.
type Repository interface {
	Count() int
}
