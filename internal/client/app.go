// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rastaval/icka-multi-account/internal/adapter"
	"github.com/rastaval/icka-multi-account/internal/config"
	httphandler "github.com/rastaval/icka-multi-account/internal/handler/http"
	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/server"
	"github.com/rastaval/icka-multi-account/internal/service"
	"github.com/rastaval/icka-multi-account/internal/store"
	"github.com/rastaval/icka-multi-account/internal/workers"
	"github.com/rastaval/icka-multi-account/models"
)

var _ Client = (*App)(nil)

// App is the assembled icka process.
type App struct {
	settings  models.Settings
	scheduler *service.Scheduler
	reports   store.ReportStorage
	status    server.Server

	logger *logger.Logger
}

// Option customises App construction.
type Option func(*options)

type options struct {
	factory adapter.SessionFactory
}

// WithSessionFactory replaces the relay session factory built from the
// adapter config.
func WithSessionFactory(f adapter.SessionFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// NewApp builds every component from cfg. When cfg.Status.Address is set the
// status listener is bound here, so an unusable address fails before the
// first pass.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	factory := o.factory
	if factory == nil {
		var err error
		factory, err = adapter.NewRelaySessionFactory(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create relay session factory: %w", err)
		}
	}

	runner := service.NewAccountRunner(factory, log)

	scheduler, err := service.NewScheduler(cfg.Accounts, cfg.Settings, runner, log)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	app := &App{
		settings:  cfg.Settings,
		scheduler: scheduler,
		reports:   store.NewReportStorage(),
		logger:    log,
	}

	if cfg.Status.Address != "" {
		handler := httphandler.NewHandler(app.reports, buildInfo, log)
		app.status, err = server.NewHTTPServer(handler.Init(), cfg.Status.Address, log)
		if err != nil {
			return nil, fmt.Errorf("create status server: %w", err)
		}
	}

	return app, nil
}

// Run drives the scheduler until it finishes. In one-shot mode it returns
// [ErrAccountsFailed] when the pass had failures. In forever mode a
// cancelled ctx is a normal stop and yields nil.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Bool("forever", a.settings.Forever).
		Dur("interval", a.settings.Interval).
		Int("batch_size", a.settings.BatchSize).
		Dur("batch_pause", a.settings.BatchPause).
		Int("concurrency", a.settings.Concurrency).
		Msg("icka started")

	schedule := workers.WorkerFunc(func(ctx context.Context) error {
		return a.scheduler.Run(ctx, a.report)
	})

	var err error
	if a.status != nil {
		err = workers.New(schedule, a.status).Run(ctx)
	} else {
		err = schedule.Run(ctx)
	}

	switch {
	case err == nil:
	case a.settings.Forever && errors.Is(err, context.Canceled):
		a.logger.Info().Int("passes", a.reports.Passes()).Msg("icka stopped")
		return nil
	default:
		return err
	}

	if last, ok := a.reports.Last(); ok && !last.OK() {
		return fmt.Errorf("%w: %d of %d", ErrAccountsFailed, last.Failed(), len(last.Results))
	}

	return nil
}

// report logs one line per account and a summary, then stores the report for
// the status endpoint.
func (a *App) report(report models.PassReport) {
	log := a.logger.WithField("pass_id", report.ID)

	for _, r := range report.Results {
		event := log.Info()
		if !r.Succeeded() {
			event = log.Warn()
		}
		event.
			Str("email", r.AccountEmail).
			Stringer("outcome", r.Outcome).
			Str("detail", r.Detail).
			Dur("duration", r.Duration).
			Msg("account result")
	}

	counts := report.Counts()
	outcomes := zerolog.Dict()
	for _, o := range []models.Outcome{
		models.OutcomeSuccess,
		models.OutcomeAuthFailure,
		models.OutcomeNetworkFailure,
		models.OutcomeProtocolFailure,
	} {
		outcomes.Int(o.String(), counts[o])
	}

	log.Info().
		Int("pass", report.Number).
		Int("accounts", len(report.Results)).
		Int("failed", report.Failed()).
		Dict("outcomes", outcomes).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("pass finished")

	a.reports.Save(report)
}
