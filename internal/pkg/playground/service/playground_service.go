package playgroundService

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/pkg/playground"
	playgroundRepository "github.com/rochi88/go-exercise/internal/pkg/playground/repository"
	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/shared/metrics"
	"github.com/rochi88/go-exercise/internal/utils"
)

// PlaygroundService defines the interface for playground operations
type PlaygroundService interface {
	Kinds() []playground.KindInfo
	Create(ctx context.Context, req *playground.CreateRequest) (*playground.Snapshot, error)
	Get(ctx context.Context, id string) (*playground.Snapshot, error)
	List(ctx context.Context) ([]playground.Snapshot, error)
	Invoke(ctx context.Context, id, operation string, req *playground.InvokeRequest) (*playground.InvokeResult, error)
	Delete(ctx context.Context, id string) error
	Sweep(ctx context.Context, idleFor time.Duration) (int, error)
}

// DefaultPlaygroundService is the default implementation of PlaygroundService
type DefaultPlaygroundService struct {
	repo    playgroundRepository.HandleRepository
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewPlaygroundService creates a new playground service. metrics may be nil.
func NewPlaygroundService(repo playgroundRepository.HandleRepository, log *logger.Logger, m *metrics.Metrics) *DefaultPlaygroundService {
	return &DefaultPlaygroundService{
		repo:    repo,
		logger:  log.Named("playground-service"),
		metrics: m,
		now:     time.Now,
	}
}

// Kinds lists the exercises that can be created
func (s *DefaultPlaygroundService) Kinds() []playground.KindInfo {
	return playground.Kinds()
}

// Create builds a new handle
func (s *DefaultPlaygroundService) Create(ctx context.Context, req *playground.CreateRequest) (*playground.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", playground.ErrInvalidRequest, err.Error())
	}

	h, err := playground.NewHandle(utils.GenerateUUID(), *req, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, h); err != nil {
		s.logger.Warn("Failed to store handle",
			zap.String("kind", string(req.Kind)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store handle: %w", err)
	}

	s.recordLive()
	s.logger.Info("Handle created",
		zap.String("handle_id", h.ID),
		zap.String("kind", string(h.Kind)))

	snap := h.Snapshot()
	return &snap, nil
}

// Get returns the snapshot of a handle
func (s *DefaultPlaygroundService) Get(ctx context.Context, id string) (*playground.Snapshot, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := h.Snapshot()
	return &snap, nil
}

// List returns snapshots of all live handles
func (s *DefaultPlaygroundService) List(ctx context.Context) ([]playground.Snapshot, error) {
	handles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list handles: %w", err)
	}

	snaps := make([]playground.Snapshot, 0, len(handles))
	for _, h := range handles {
		snaps = append(snaps, h.Snapshot())
	}
	return snaps, nil
}

// Invoke runs an operation on a handle
func (s *DefaultPlaygroundService) Invoke(ctx context.Context, id, operation string, req *playground.InvokeRequest) (*playground.InvokeResult, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req == nil {
		req = &playground.InvokeRequest{}
	}

	result, err := h.Invoke(operation, *req, s.now())
	if err != nil {
		s.logger.Debug("Operation refused",
			zap.String("handle_id", id),
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordOperation(string(h.Kind), operation, result.Rejected)
	}
	s.logger.Debug("Operation invoked",
		zap.String("handle_id", id),
		zap.String("kind", string(h.Kind)),
		zap.String("operation", operation),
		zap.Bool("rejected", result.Rejected))

	return result, nil
}

// Delete removes a handle
func (s *DefaultPlaygroundService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.recordLive()
	s.logger.Info("Handle deleted", zap.String("handle_id", id))
	return nil
}

// Sweep removes handles idle for longer than idleFor
func (s *DefaultPlaygroundService) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	removed, err := s.repo.DeleteIdle(ctx, s.now().Add(-idleFor))
	if err != nil {
		return 0, fmt.Errorf("failed to sweep handles: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordSwept(removed)
	}
	s.recordLive()

	if removed > 0 {
		s.logger.Info("Idle handles swept",
			zap.Int("removed", removed),
			zap.Duration("idle_for", idleFor))
	}
	return removed, nil
}

func (s *DefaultPlaygroundService) recordLive() {
	if s.metrics != nil {
		s.metrics.SetLiveHandles(s.repo.Count())
	}
}
