// Package scheduler runs optional background jobs on cron schedules. The
// dashboard itself is request-driven; the only job today is the snapshot
// export, and it is disabled unless configured.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// Job is one schedulable unit of work.
type Job interface {
	// Name returns the job name.
	Name() string

	// Run executes the job.
	Run(ctx context.Context) error

	// Schedule returns the cron expression (with seconds field).
	Schedule() string
}

// Scheduler manages scheduled jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger
	jobs   map[string]Job
	mu     sync.RWMutex
}

// New creates a Scheduler.
func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: log.Component("scheduler"),
		jobs:   make(map[string]Job),
	}
}

// AddJob registers a job under its schedule.
func (s *Scheduler) AddJob(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already exists", name)
	}

	if _, err := s.cron.AddFunc(job.Schedule(), func() {
		s.runJob(job)
	}); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.jobs[name] = job
	s.logger.WithFields(map[string]interface{}{
		"job":      name,
		"schedule": job.Schedule(),
	}).Info("job added to scheduler")

	return nil
}

// Start starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")
	s.cron.Start()
}

// Stop stops the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	start := time.Now()
	log := s.logger.WithField("job", job.Name())
	log.Info("job started")

	if err := job.Run(context.Background()); err != nil {
		log.WithError(err).WithField("duration", time.Since(start)).Error("job failed")
		return
	}

	log.WithField("duration", time.Since(start)).Info("job completed")
}
