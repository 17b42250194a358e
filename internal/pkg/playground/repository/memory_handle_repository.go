package playgroundRepository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rochi88/go-exercise/internal/pkg/playground"
	"github.com/rochi88/go-exercise/internal/shared/interfaces"
)

// HandleRepository stores live playground handles
type HandleRepository interface {
	interfaces.Repository
	Save(ctx context.Context, h *playground.Handle) error
	Get(ctx context.Context, id string) (*playground.Handle, error)
	List(ctx context.Context) ([]*playground.Handle, error)
	Delete(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
	SetLimit(limit int)
}

// MemoryHandleRepository keeps handles in process memory
type MemoryHandleRepository struct {
	mu      sync.RWMutex
	handles map[string]*playground.Handle
	limit   atomic.Int64
}

// NewMemoryHandleRepository creates a repository holding at most limit handles
func NewMemoryHandleRepository(limit int) *MemoryHandleRepository {
	r := &MemoryHandleRepository{
		handles: make(map[string]*playground.Handle),
	}
	r.limit.Store(int64(limit))
	return r
}

// SetLimit changes the maximum number of handles. Existing handles above
// the new limit are kept; only new saves are refused.
func (r *MemoryHandleRepository) SetLimit(limit int) {
	r.limit.Store(int64(limit))
}

// Save stores h
func (r *MemoryHandleRepository) Save(ctx context.Context, h *playground.Handle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handles[h.ID]; !exists && int64(len(r.handles)) >= r.limit.Load() {
		return fmt.Errorf("%w: %d handles", playground.ErrLimitReached, len(r.handles))
	}
	r.handles[h.ID] = h
	return nil
}

// Get returns the handle with the given id
func (r *MemoryHandleRepository) Get(ctx context.Context, id string) (*playground.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handles[id]
	if !ok {
		return nil, playground.ErrHandleNotFound
	}
	return h, nil
}

// List returns all handles, oldest first
func (r *MemoryHandleRepository) List(ctx context.Context) ([]*playground.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	handles := make([]*playground.Handle, 0, len(r.handles))
	for _, h := range r.handles {
		handles = append(handles, h)
	}
	r.mu.RUnlock()

	sort.Slice(handles, func(i, j int) bool {
		if handles[i].CreatedAt.Equal(handles[j].CreatedAt) {
			return handles[i].ID < handles[j].ID
		}
		return handles[i].CreatedAt.Before(handles[j].CreatedAt)
	})
	return handles, nil
}

// Delete removes the handle with the given id
func (r *MemoryHandleRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handles[id]; !ok {
		return playground.ErrHandleNotFound
	}
	delete(r.handles, id)
	return nil
}

// DeleteIdle removes handles last used before the given time and returns
// how many were removed
func (r *MemoryHandleRepository) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, h := range r.handles {
		if h.LastUsed().Before(before) {
			delete(r.handles, id)
			removed++
		}
	}
	return removed, nil
}

// Count returns the number of stored handles
func (r *MemoryHandleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}
