// Package scheduler runs the checklist on a cron schedule for watch
// mode. Each firing scores the configured watchlist and writes the
// reports; an in-flight run suppresses the next firing rather than
// overlapping it.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/export"
	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

// runTimeout bounds one full watchlist scoring pass.
const runTimeout = 30 * time.Minute

// Scheduler drives periodic checklist runs.
type Scheduler struct {
	checklist *checklist.Service
	export    *export.Service
	cron      *cron.Cron
	logger    arbor.ILogger

	tickers []string
	running atomic.Bool
}

// NewScheduler creates a watch-mode scheduler for the given tickers.
func NewScheduler(checklistSvc *checklist.Service, exportSvc *export.Service, tickers []string, logger arbor.ILogger) *Scheduler {
	return &Scheduler{
		checklist: checklistSvc,
		export:    exportSvc,
		cron:      cron.New(),
		logger:    logger,
		tickers:   tickers,
	}
}

// Start registers the schedule and begins firing. The schedule is a
// standard five-field cron expression.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.runOnce)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().
		Str("schedule", schedule).
		Int("tickers", len(s.tickers)).
		Msg("Watch mode scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Watch mode scheduler stopped")
}

// RunNow triggers an immediate scoring pass outside the schedule.
func (s *Scheduler) RunNow() {
	go s.runOnce()
}

func (s *Scheduler) runOnce() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn().Msg("Previous run still in progress, skipping this firing")
		return
	}
	defer s.running.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	s.logger.Info().
		Int("tickers", len(s.tickers)).
		Msg("Starting scheduled checklist run")

	run, err := s.checklist.Run(ctx, s.tickers)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("Scheduled checklist run failed")
		return
	}

	paths, err := s.export.Write(run)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("run_id", run.RunID).
			Msg("Report export failed")
		return
	}

	s.logger.Info().
		Str("run_id", run.RunID).
		Int("results", len(run.Results)).
		Int("reports", len(paths)).
		Str("duration", run.Duration.Round(time.Millisecond).String()).
		Msg("Scheduled checklist run completed")
}
