// Package scheduler implements background job scheduling for the school
// events hub. Jobs run on fixed intervals in a goroutine per job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// JOB INTERFACE
// ══════════════════════════════════════════════════════════════════════════════

// Job defines the interface that all scheduled jobs must implement.
type Job interface {
	// Name returns the unique name of the job.
	Name() string

	// Run executes the job.
	// The context is cancelled when the scheduler is stopping.
	Run(ctx context.Context) error

	// Description returns a human-readable description of the job.
	Description() string
}

// Schedule defines when a job should run.
type Schedule interface {
	// Next returns the next time the job should run after the given time.
	Next(t time.Time) time.Time

	// String returns a human-readable representation of the schedule.
	String() string
}

// JobResult contains the result of a job execution.
type JobResult struct {
	JobName     string
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
	Success     bool
	Error       error
}

// ══════════════════════════════════════════════════════════════════════════════
// SCHEDULER
// ══════════════════════════════════════════════════════════════════════════════

// Scheduler manages and executes scheduled jobs.
type Scheduler struct {
	mu sync.RWMutex

	logger *slog.Logger

	jobs    map[string]*scheduledJob
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	lastRuns map[string]JobResult
}

// scheduledJob wraps a Job with its schedule.
type scheduledJob struct {
	job      Job
	schedule Schedule
}

// SchedulerConfig contains configuration for the Scheduler.
type SchedulerConfig struct {
	// Logger for structured logging.
	Logger *slog.Logger
}

// NewScheduler creates a new Scheduler with the given configuration.
func NewScheduler(config SchedulerConfig) *Scheduler {
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		logger:   log,
		jobs:     make(map[string]*scheduledJob),
		lastRuns: make(map[string]JobResult),
	}
}

// Register adds a job to the scheduler. Jobs cannot be registered after
// the scheduler has started.
func (s *Scheduler) Register(job Job, schedule Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	if _, exists := s.jobs[job.Name()]; exists {
		return fmt.Errorf("job %q already registered", job.Name())
	}

	s.jobs[job.Name()] = &scheduledJob{job: job, schedule: schedule}
	s.logger.Info("job registered",
		slog.String("job", job.Name()),
		slog.String("schedule", schedule.String()),
	)
	return nil
}

// Start launches one goroutine per registered job. It returns
// immediately; jobs run until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	s.running = true

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for _, sj := range s.jobs {
		s.wg.Add(1)
		go s.runLoop(runCtx, sj)
	}

	s.logger.Info("scheduler started", slog.Int("jobs", len(s.jobs)))
	return nil
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

// LastRun returns the most recent result for the named job.
func (s *Scheduler) LastRun(jobName string) (JobResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.lastRuns[jobName]
	return r, ok
}

func (s *Scheduler) runLoop(ctx context.Context, sj *scheduledJob) {
	defer s.wg.Done()

	timer := time.NewTimer(time.Until(sj.schedule.Next(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.runJob(ctx, sj.job)
			timer.Reset(time.Until(sj.schedule.Next(time.Now())))
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	result := JobResult{
		JobName:   job.Name(),
		StartedAt: time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("job panic: %v", r)
		}
		result.CompletedAt = time.Now()
		result.Duration = result.CompletedAt.Sub(result.StartedAt)
		result.Success = result.Error == nil

		s.mu.Lock()
		s.lastRuns[job.Name()] = result
		s.mu.Unlock()

		if result.Success {
			s.logger.Info("job completed",
				slog.String("job", job.Name()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			s.logger.Error("job failed",
				slog.String("job", job.Name()),
				slog.Duration("duration", result.Duration),
				slog.Any("error", result.Error),
			)
		}
	}()

	result.Error = job.Run(ctx)
}
