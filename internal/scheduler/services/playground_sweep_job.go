package schedulerServices

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	playgroundService "github.com/rochi88/go-exercise/internal/pkg/playground/service"
	"github.com/rochi88/go-exercise/internal/shared/logger"
)

// PlaygroundSweepJob removes playground handles that have been idle too long
type PlaygroundSweepJob struct {
	service  playgroundService.PlaygroundService
	schedule string
	idleTTL  atomic.Int64
	logger   *logger.Logger
}

// NewPlaygroundSweepJob creates a sweep job
func NewPlaygroundSweepJob(svc playgroundService.PlaygroundService, schedule string, idleTTL time.Duration, logger *logger.Logger) *PlaygroundSweepJob {
	j := &PlaygroundSweepJob{
		service:  svc,
		schedule: schedule,
		logger:   logger.Named("sweep-job"),
	}
	j.idleTTL.Store(int64(idleTTL))
	return j
}

// Name returns the name of the job
func (j *PlaygroundSweepJob) Name() string {
	return "playground-sweep"
}

// Schedule returns the cron schedule expression
func (j *PlaygroundSweepJob) Schedule() string {
	return j.schedule
}

// Description returns a description of what the job does
func (j *PlaygroundSweepJob) Description() string {
	return "Removes idle playground handles"
}

// Timeout returns the maximum time the job should run
func (j *PlaygroundSweepJob) Timeout() time.Duration {
	return time.Minute
}

// SetIdleTTL changes how long a handle may stay unused
func (j *PlaygroundSweepJob) SetIdleTTL(ttl time.Duration) {
	j.idleTTL.Store(int64(ttl))
}

// IdleTTL returns how long a handle may stay unused
func (j *PlaygroundSweepJob) IdleTTL() time.Duration {
	return time.Duration(j.idleTTL.Load())
}

// Run executes the sweep
func (j *PlaygroundSweepJob) Run(ctx context.Context) error {
	removed, err := j.service.Sweep(ctx, j.IdleTTL())
	if err != nil {
		return err
	}

	j.logger.Debug("Sweep finished", zap.Int("removed", removed))
	return nil
}
