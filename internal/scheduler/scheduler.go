package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type SessionPurger interface {
	PurgeIdle(ctx context.Context) (int, error)
}

// Scheduler runs the periodic housekeeping jobs.
type Scheduler struct {
	cron      *cron.Cron
	log       *slog.Logger
	purger    SessionPurger
	purgeSpec string
	timeout   time.Duration
}

func New(log *slog.Logger, purger SessionPurger, purgeSpec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.Local)),
		log:       log,
		purger:    purger,
		purgeSpec: purgeSpec,
		timeout:   10 * time.Second,
	}
}

// Start registers the jobs and starts the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	const op = "scheduler.Start"

	if _, err := s.cron.AddFunc(s.purgeSpec, s.purgeIdleSessions); err != nil {
		return fmt.Errorf("%s: purge spec %q: %w", op, s.purgeSpec, err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", slog.String("purge_spec", s.purgeSpec))

	return nil
}

// Stop stops scheduling; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) purgeIdleSessions() {
	const op = "scheduler.purgeIdleSessions"

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	removed, err := s.purger.PurgeIdle(ctx)
	if err != nil {
		s.log.Error("failed to purge idle sessions", slog.String("op", op), slog.String("error", err.Error()))
		return
	}

	if removed > 0 {
		s.log.Info("idle sessions purged", slog.String("op", op), slog.Int("removed", removed))
	}
}
