package scheduler

import (
	"context"
	"fmt"
	"time"

	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/shared/logger"
)

// Job represents a cron job that can be scheduled
type Job interface {
	// Name returns the name of the job
	Name() string

	// Schedule returns the cron schedule expression
	Schedule() string

	// Run executes the job
	Run(ctx context.Context) error

	// Description returns a description of what the job does
	Description() string

	// Timeout returns the maximum time the job should run
	Timeout() time.Duration
}

// JobResult represents the result of a job execution
type JobResult struct {
	JobName   string
	Success   bool
	Duration  time.Duration
	Error     error
	StartTime time.Time
	EndTime   time.Time
}

// Scheduler manages cron jobs
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger
	jobs   []Job
	jobIDs map[string]cron.EntryID
}

// NewScheduler creates a new scheduler instance
func NewScheduler(c *cron.Cron, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   c,
		logger: logger.Named("scheduler"),
		jobs:   make([]Job, 0),
		jobIDs: make(map[string]cron.EntryID),
	}
}

// RegisterJob registers a single job with the scheduler
func (s *Scheduler) RegisterJob(job Job) error {
	if _, exists := s.jobIDs[job.Name()]; exists {
		return fmt.Errorf("job %q already registered", job.Name())
	}

	// Schedule the job
	id, err := s.cron.AddFunc(job.Schedule(), func() { s.RunJob(job) })
	if err != nil {
		s.logger.Error("Failed to schedule job",
			zap.String("job_name", job.Name()),
			zap.String("schedule", job.Schedule()),
			zap.Error(err))
		return fmt.Errorf("failed to schedule job %q: %w", job.Name(), err)
	}

	s.jobs = append(s.jobs, job)
	s.jobIDs[job.Name()] = id
	s.logger.Info("Job registered successfully",
		zap.String("job_name", job.Name()),
		zap.String("schedule", job.Schedule()),
		zap.String("description", job.Description()))

	return nil
}

// RegisterJobs registers all given jobs
func (s *Scheduler) RegisterJobs(jobs ...Job) error {
	for _, job := range jobs {
		if err := s.RegisterJob(job); err != nil {
			return err
		}
	}

	s.logger.Info("All jobs registered successfully", zap.Int("job_count", len(jobs)))
	return nil
}

// RunJob executes a job once with its timeout and logs the result
func (s *Scheduler) RunJob(job Job) JobResult {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), job.Timeout())
	defer cancel()

	s.logger.Debug("Starting job execution",
		zap.String("job_name", job.Name()),
		zap.Time("start_time", startTime))

	err := job.Run(ctx)

	endTime := time.Now()
	result := JobResult{
		JobName:   job.Name(),
		Success:   err == nil,
		Duration:  endTime.Sub(startTime),
		Error:     err,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if result.Success {
		s.logger.Debug("Job completed successfully",
			zap.String("job_name", result.JobName),
			zap.Duration("duration", result.Duration))
	} else {
		s.logger.Error("Job failed",
			zap.String("job_name", result.JobName),
			zap.Duration("duration", result.Duration),
			zap.Error(result.Error))
	}

	return result
}

// GetRegisteredJobs returns a list of all registered job names
func (s *Scheduler) GetRegisteredJobs() []string {
	names := make([]string, 0, len(s.jobs))
	for _, job := range s.jobs {
		names = append(names, job.Name())
	}
	return names
}

// Start starts the cron scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started")
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}
