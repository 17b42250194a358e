package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive
	cron "github.com/robfig/cron/v3"

	"github.com/rochi88/go-exercise/internal/pkg/playground"
	playgroundRepository "github.com/rochi88/go-exercise/internal/pkg/playground/repository"
	playgroundService "github.com/rochi88/go-exercise/internal/pkg/playground/service"
	"github.com/rochi88/go-exercise/internal/scheduler"
	schedulerServices "github.com/rochi88/go-exercise/internal/scheduler/services"
	"github.com/rochi88/go-exercise/internal/shared/logger"
)

type stubJob struct {
	name     string
	schedule string
	err      error
	ran      chan struct{}
}

func (j *stubJob) Name() string           { return j.name }
func (j *stubJob) Schedule() string       { return j.schedule }
func (j *stubJob) Description() string    { return "stub" }
func (j *stubJob) Timeout() time.Duration { return time.Second }

func (j *stubJob) Run(ctx context.Context) error {
	if j.ran != nil {
		select {
		case j.ran <- struct{}{}:
		default:
		}
	}
	return j.err
}

func TestRegisterJobs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := scheduler.NewScheduler(cron.New(), logger.NewNop())
	g.Expect(s.RegisterJobs(
		&stubJob{name: "a", schedule: "@every 1h"},
		&stubJob{name: "b", schedule: "*/5 * * * *"},
	)).To(Succeed())
	g.Expect(s.GetRegisteredJobs()).To(Equal([]string{"a", "b"}))

	g.Expect(s.RegisterJob(&stubJob{name: "a", schedule: "@every 1h"})).To(MatchError(ContainSubstring("already registered")))
	g.Expect(s.RegisterJob(&stubJob{name: "c", schedule: "not a schedule"})).NotTo(Succeed())
	g.Expect(s.GetRegisteredJobs()).To(HaveLen(2))
}

func TestRunJob(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := scheduler.NewScheduler(cron.New(), logger.NewNop())

	ok := s.RunJob(&stubJob{name: "ok"})
	g.Expect(ok.Success).To(BeTrue())

	boom := errors.New("boom")
	failed := s.RunJob(&stubJob{name: "fail", err: boom})
	g.Expect(failed.Success).To(BeFalse())
	g.Expect(failed.Error).To(MatchError(boom))
}

func TestScheduledJobRuns(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := scheduler.NewScheduler(cron.New(cron.WithSeconds()), logger.NewNop())
	job := &stubJob{name: "tick", schedule: "* * * * * *", ran: make(chan struct{}, 1)}
	g.Expect(s.RegisterJob(job)).To(Succeed())

	s.Start()
	defer s.Stop()

	g.Eventually(job.ran, 3*time.Second).Should(Receive())
}

func TestPlaygroundSweepJob(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	ctx := context.Background()

	log := logger.NewNop()
	svc := playgroundService.NewPlaygroundService(playgroundRepository.NewMemoryHandleRepository(10), log, nil)
	_, err := svc.Create(ctx, &playground.CreateRequest{Kind: playground.KindCounter})
	g.Expect(err).NotTo(HaveOccurred())

	job := schedulerServices.NewPlaygroundSweepJob(svc, "@every 1m", time.Hour, log)
	g.Expect(job.Run(ctx)).To(Succeed())
	list, err := svc.List(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(list).To(HaveLen(1))

	// a negative ttl puts the cutoff in the future, so everything is idle
	job.SetIdleTTL(-time.Minute)
	g.Expect(job.IdleTTL()).To(Equal(-time.Minute))
	g.Expect(job.Run(ctx)).To(Succeed())
	list, err = svc.List(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(list).To(BeEmpty())
}
