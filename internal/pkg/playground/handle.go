package playground

import (
	"fmt"
	"sync"
	"time"
)

// Handle is a live exercise handle plus its bookkeeping. Operations on a
// handle are serialized.
type Handle struct {
	ID        string
	Kind      Kind
	CreatedAt time.Time

	mu       sync.Mutex
	lastUsed time.Time
	ex       exercise
}

// NewHandle builds the exercise named by req.Kind
func NewHandle(id string, req CreateRequest, now time.Time) (*Handle, error) {
	entry, ok := catalog[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	return &Handle{
		ID:        id,
		Kind:      req.Kind,
		CreatedAt: now,
		lastUsed:  now,
		ex:        entry.build(req),
	}, nil
}

// Invoke runs op against the handle
func (h *Handle) Invoke(op string, req InvokeRequest, now time.Time) (*InvokeResult, error) {
	if !HasOperation(h.Kind, op) {
		return nil, unknownOperation(h.Kind, op)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, rejected, err := h.ex.invoke(op, req)
	if err != nil {
		return nil, err
	}
	h.lastUsed = now

	return &InvokeResult{
		Operation: op,
		Result:    result,
		Rejected:  rejected,
		Handle:    h.snapshotLocked(),
	}, nil
}

// Snapshot returns the current readable state
func (h *Handle) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *Handle) snapshotLocked() Snapshot {
	return Snapshot{
		ID:         h.ID,
		Kind:       h.Kind,
		State:      h.ex.state(),
		CreatedAt:  h.CreatedAt,
		LastUsedAt: h.lastUsed,
	}
}

// LastUsed returns when the handle was created or last operated on
func (h *Handle) LastUsed() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastUsed
}

// Kinds lists every exercise kind with its create fields and operations
func Kinds() []KindInfo {
	kinds := make([]KindInfo, 0, len(kindOrder))
	for _, k := range kindOrder {
		entry := catalog[k]
		kinds = append(kinds, KindInfo{
			Kind:       k,
			Create:     append([]string{}, entry.create...),
			Operations: append([]string{}, entry.operations...),
		})
	}
	return kinds
}

// HasOperation reports whether kind supports op
func HasOperation(kind Kind, op string) bool {
	for _, o := range catalog[kind].operations {
		if o == op {
			return true
		}
	}
	return false
}
