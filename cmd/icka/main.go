// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rastaval/icka-multi-account/internal/client"
	"github.com/rastaval/icka-multi-account/internal/config"
	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK             = 0
	exitAccountsFailed = 1
	exitConfigError    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stdout, usage)
		return exitOK
	}
	if err != nil {
		log := logger.NewLogger("icka", config.DefaultLogLevel, config.DefaultLogFormat)
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("error getting configs")
		return exitConfigError
	}

	log := logger.NewLogger("icka", cfg.Logging.Level, cfg.Logging.Format)
	log.Info().
		Str("version", buildInfo.Version).
		Str("date", buildInfo.Date).
		Str("commit", buildInfo.Commit).
		Int("accounts", len(cfg.Accounts)).
		Msg("build info")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("init app error")
		return exitConfigError
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return runClient(ctx, app, log)
}

// runClient runs c and maps its result to the process exit code.
func runClient(ctx context.Context, c client.Client, log *logger.Logger) int {
	err := c.Run(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, client.ErrAccountsFailed):
		log.Warn().Err(err).Msg("pass finished with failures")
		return exitAccountsFailed
	default:
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("run error")
		return exitConfigError
	}
}

const usage = `Usage: icka [flags]

Keeps one or more IRCCloud accounts alive by logging in and completing the
WebSocket handshake for each of them, once or on a fixed interval.

Accounts come from -accounts-file (one email:password per line) or from
-email and -password. Every flag has an ICKA_* environment variable, and a
.env file or a YAML/JSON file given with -c is read as a lower layer.

Flags:
  -email, -password          single account credentials
  -accounts-file path        accounts file
  -forever                   repeat passes until signalled
  -sleep-interval 1h30m      pause between passes (units s, m, h, d)
  -batch-size n              accounts per batch, 0 for one batch
  -batch-sleep-seconds n     pause between batches
  -concurrency n             accounts of a batch run in parallel
  -user-agent ua             User-Agent sent to the relay
  -request-timeout d         HTTP and dial timeout
  -ack-timeout d             keep-alive acknowledgement timeout
  -log-level level           debug, info, warn, error
  -log-format format         json or console
  -status-address host:port  serve /healthz, /status and /version
  -c, -config path           YAML or JSON config file

Exit status is 0 on success, 1 when an account failed in a one-shot run and
2 on configuration errors.`
