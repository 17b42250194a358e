package playgroundRepository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/rochi88/go-exercise/internal/pkg/playground"
	playgroundRepository "github.com/rochi88/go-exercise/internal/pkg/playground/repository"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newHandle(t *testing.T, id string, at time.Time) *playground.Handle {
	t.Helper()
	h, err := playground.NewHandle(id, playground.CreateRequest{Kind: playground.KindCounter}, at)
	if err != nil {
		t.Fatalf("NewHandle: %v", err)
	}
	return h
}

func TestMemoryHandleRepository_CRUD(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	ctx := context.Background()

	repo := playgroundRepository.NewMemoryHandleRepository(10)
	g.Expect(repo.Save(ctx, newHandle(t, "b", t0.Add(time.Second)))).To(Succeed())
	g.Expect(repo.Save(ctx, newHandle(t, "a", t0))).To(Succeed())

	h, err := repo.Get(ctx, "a")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(h.ID).To(Equal("a"))

	list, err := repo.List(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(list).To(HaveLen(2))
	g.Expect(list[0].ID).To(Equal("a"))

	g.Expect(repo.Delete(ctx, "a")).To(Succeed())
	g.Expect(repo.Delete(ctx, "a")).To(MatchError(playground.ErrHandleNotFound))
	_, err = repo.Get(ctx, "a")
	g.Expect(err).To(MatchError(playground.ErrHandleNotFound))
	g.Expect(repo.Count()).To(Equal(1))
}

func TestMemoryHandleRepository_Limit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	ctx := context.Background()

	repo := playgroundRepository.NewMemoryHandleRepository(1)
	g.Expect(repo.Save(ctx, newHandle(t, "a", t0))).To(Succeed())
	g.Expect(repo.Save(ctx, newHandle(t, "b", t0))).To(MatchError(playground.ErrLimitReached))

	repo.SetLimit(2)
	g.Expect(repo.Save(ctx, newHandle(t, "b", t0))).To(Succeed())
}

func TestMemoryHandleRepository_DeleteIdle(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	ctx := context.Background()

	repo := playgroundRepository.NewMemoryHandleRepository(10)
	old := newHandle(t, "old", t0)
	fresh := newHandle(t, "fresh", t0)
	_, err := fresh.Invoke("next", playground.InvokeRequest{}, t0.Add(time.Hour))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(repo.Save(ctx, old)).To(Succeed())
	g.Expect(repo.Save(ctx, fresh)).To(Succeed())

	removed, err := repo.DeleteIdle(ctx, t0.Add(30*time.Minute))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(removed).To(Equal(1))

	_, err = repo.Get(ctx, "fresh")
	g.Expect(err).NotTo(HaveOccurred())
}

func TestMemoryHandleRepository_CancelledContext(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := playgroundRepository.NewMemoryHandleRepository(10)
	g.Expect(repo.Save(ctx, newHandle(t, "a", t0))).To(MatchError(context.Canceled))
	g.Expect(repo.Count()).To(BeZero())
}

func TestMemoryHandleRepository_ConcurrentSaves(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	ctx := context.Background()

	repo := playgroundRepository.NewMemoryHandleRepository(50)

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Save(ctx, newHandle(t, fmt.Sprintf("h%d", i), t0))
		}()
	}
	wg.Wait()
	close(errs)

	failed := 0
	for err := range errs {
		if err != nil {
			g.Expect(err).To(MatchError(playground.ErrLimitReached))
			failed++
		}
	}
	g.Expect(failed).To(Equal(50))
	g.Expect(repo.Count()).To(Equal(50))
}
