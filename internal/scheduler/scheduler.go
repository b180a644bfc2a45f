// Package scheduler runs the periodic maintenance jobs of the send pipeline.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Activator enqueues campaigns that are due.
type Activator interface {
	ActivateDue(ctx context.Context, now time.Time) (int, error)
}

// Reclaimer requeues tasks whose lease expired.
type Reclaimer interface {
	ReclaimExpired(ctx context.Context, now time.Time) (int, error)
}

// Config holds the cron specs of each job. Specs accept an optional seconds field
// and descriptors such as "@every 15s".
type Config struct {
	ActivationSpec string
	ReclaimSpec    string
	JobTimeout     time.Duration
}

// Scheduler wraps a cron instance with the pipeline jobs registered.
type Scheduler struct {
	cron      *cron.Cron
	config    Config
	activator Activator
	reclaimer Reclaimer
	logger    *slog.Logger
	now       func() time.Time
}

// New registers the activation and reclaim jobs. A job still running when its next
// tick fires is skipped.
func New(config Config, activator Activator, reclaimer Reclaimer, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = time.Minute
	}

	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	cronLogger := slogCronLogger{logger: logger}

	s := &Scheduler{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		config:    config,
		activator: activator,
		reclaimer: reclaimer,
		logger:    logger,
		now:       time.Now,
	}

	if _, err := s.cron.AddFunc(config.ActivationSpec, s.runActivation); err != nil {
		return nil, fmt.Errorf("invalid activation schedule %q: %w", config.ActivationSpec, err)
	}
	if _, err := s.cron.AddFunc(config.ReclaimSpec, s.runReclaim); err != nil {
		return nil, fmt.Errorf("invalid reclaim schedule %q: %w", config.ReclaimSpec, err)
	}
	return s, nil
}

// Run starts the scheduler and blocks until ctx is cancelled and running jobs finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("scheduler started",
		slog.String("activation_spec", s.config.ActivationSpec),
		slog.String("reclaim_spec", s.config.ReclaimSpec),
	)
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
	return nil
}

// ActivateDue runs one activation sweep.
func (s *Scheduler) ActivateDue(ctx context.Context) (int, error) {
	n, err := s.activator.ActivateDue(ctx, s.now().UTC())
	if err != nil {
		return n, fmt.Errorf("activate due campaigns: %w", err)
	}
	return n, nil
}

// ReclaimExpired runs one lease reclaim sweep.
func (s *Scheduler) ReclaimExpired(ctx context.Context) (int, error) {
	n, err := s.reclaimer.ReclaimExpired(ctx, s.now().UTC())
	if err != nil {
		return n, fmt.Errorf("reclaim expired leases: %w", err)
	}
	return n, nil
}

func (s *Scheduler) runActivation() {
	s.runJob("activate-due-campaigns", s.ActivateDue)
}

func (s *Scheduler) runReclaim() {
	s.runJob("reclaim-expired-leases", s.ReclaimExpired)
}

func (s *Scheduler) runJob(name string, job func(ctx context.Context) (int, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	n, err := job(ctx)
	if err != nil {
		s.logger.Error("scheduled job failed", slog.String("job", name), slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.Info("scheduled job finished", slog.String("job", name), slog.Int("affected", n))
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
