// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rastaval/icka-multi-account/internal/interval"
	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/utils"
	"github.com/rastaval/icka-multi-account/internal/workers"
	"github.com/rastaval/icka-multi-account/models"
)

// Scheduler drives passes over the configured accounts.
//
// A pass runs every account exactly once. Accounts are split into batches of
// Settings.BatchSize; the accounts of one batch go through a worker pool of
// Settings.Concurrency and consecutive batches are separated by
// Settings.BatchPause. One account failing never affects the others.
type Scheduler struct {
	accounts []models.Account
	settings models.Settings

	runner AccountRunner
	pool   *workers.Pool
	ids    *utils.UUIDGenerator

	passes atomic.Int64

	logger *logger.Logger
}

// NewScheduler validates its inputs and returns an idle scheduler. The
// accounts slice is copied.
func NewScheduler(accounts []models.Account, settings models.Settings, runner AccountRunner, logger *logger.Logger) (*Scheduler, error) {
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	if runner == nil {
		return nil, ErrNoRunner
	}

	return &Scheduler{
		accounts: slices.Clone(accounts),
		settings: settings,
		runner:   runner,
		pool:     workers.NewPool(settings.Concurrency),
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

// Run executes one pass and returns nil when Settings.Forever is false.
//
// In forever mode it repeats pass, report, sleep Settings.Interval until ctx
// is cancelled, and then returns ctx.Err(). A non-positive interval is
// rejected with [interval.ErrInvalidInterval] before the first pass.
//
// report may be nil.
func (s *Scheduler) Run(ctx context.Context, report ReportFunc) error {
	if report == nil {
		report = func(models.PassReport) {}
	}

	if !s.settings.Forever {
		report(s.RunPass(ctx))
		return nil
	}

	if s.settings.Interval <= 0 {
		return fmt.Errorf("%w: forever mode needs a positive interval, got %s",
			interval.ErrInvalidInterval, s.settings.Interval)
	}

	for {
		report(s.RunPass(ctx))

		if err := ctx.Err(); err != nil {
			return err
		}

		s.logger.Info().
			Dur("interval", s.settings.Interval).
			Time("next_pass_at", time.Now().Add(s.settings.Interval)).
			Msg("sleeping until next pass")

		if err := sleep(ctx, s.settings.Interval); err != nil {
			return err
		}
	}
}

// RunPass runs every account once and returns the report with results in
// configuration order. When ctx is cancelled mid-pass the accounts not yet
// started are reported as network failures, so the report always holds one
// result per account.
func (s *Scheduler) RunPass(ctx context.Context) models.PassReport {
	report := models.PassReport{
		ID:        s.ids.Generate(),
		Number:    int(s.passes.Add(1)),
		StartedAt: time.Now(),
		Results:   make([]models.RunResult, len(s.accounts)),
	}

	log := s.logger.WithField("pass_id", report.ID)
	ctx = log.WithContext(ctx)
	log.Info().
		Int("pass", report.Number).
		Int("accounts", len(s.accounts)).
		Msg("pass started")

	batches := s.batches()
	for i, batch := range batches {
		jobs := make([]workers.Job, 0, batch.end-batch.start)
		for idx := batch.start; idx < batch.end; idx++ {
			jobs = append(jobs, func(ctx context.Context) {
				report.Results[idx] = s.runAccount(ctx, s.accounts[idx])
			})
		}

		s.pool.Run(ctx, jobs)

		if i == len(batches)-1 || s.settings.BatchPause <= 0 || ctx.Err() != nil {
			continue
		}

		log.Info().
			Int("batch", i+1).
			Int("batches", len(batches)).
			Dur("pause", s.settings.BatchPause).
			Msg("batch finished, pausing")

		_ = sleep(ctx, s.settings.BatchPause)
	}

	report.FinishedAt = time.Now()
	return report
}

func (s *Scheduler) runAccount(ctx context.Context, account models.Account) models.RunResult {
	if err := ctx.Err(); err != nil {
		return models.RunResult{
			AccountEmail: account.Email,
			Outcome:      models.OutcomeNetworkFailure,
			Detail:       fmt.Sprintf("cancelled before start: %v", err),
			StartedAt:    time.Now(),
		}
	}

	return s.runner.Run(ctx, account)
}

type batch struct {
	start, end int
}

// batches splits the account indexes into consecutive ranges of at most
// BatchSize. A non-positive BatchSize yields a single batch.
func (s *Scheduler) batches() []batch {
	size := s.settings.BatchSize
	if size <= 0 || size > len(s.accounts) {
		size = len(s.accounts)
	}

	out := make([]batch, 0, (len(s.accounts)+size-1)/size)
	for start := 0; start < len(s.accounts); start += size {
		out = append(out, batch{start: start, end: min(start+size, len(s.accounts))})
	}

	return out
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
