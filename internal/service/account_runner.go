// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rastaval/icka-multi-account/internal/adapter"
	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/models"
)

// runState names the steps of one account run. Terminal states mirror the
// outcomes.
type runState string

const (
	stateIdle           runState = "idle"
	stateLoggingIn      runState = "logging_in"
	stateLoggedIn       runState = "logged_in"
	stateKeepingAlive   runState = "keeping_alive"
	stateSuccess        runState = "success"
	stateAuthFailed     runState = "auth_failed"
	stateNetworkFailed  runState = "network_failed"
	stateProtocolFailed runState = "protocol_failed"
)

var terminalStates = map[models.Outcome]runState{
	models.OutcomeSuccess:         stateSuccess,
	models.OutcomeAuthFailure:     stateAuthFailed,
	models.OutcomeNetworkFailure:  stateNetworkFailed,
	models.OutcomeProtocolFailure: stateProtocolFailed,
}

type accountRunner struct {
	factory adapter.SessionFactory

	logger *logger.Logger
}

// NewAccountRunner returns the production [AccountRunner]. Every Run builds a
// fresh login client and keep-alive session from factory, so nothing is
// shared between accounts or between passes.
func NewAccountRunner(factory adapter.SessionFactory, logger *logger.Logger) AccountRunner {
	return &accountRunner{factory: factory, logger: logger}
}

// Run implements [AccountRunner].
func (r *accountRunner) Run(ctx context.Context, account models.Account) (result models.RunResult) {
	log := r.loggerFrom(ctx).WithField("email", account.Email)
	startedAt := time.Now()
	result = models.RunResult{AccountEmail: account.Email, StartedAt: startedAt}

	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Msg("account run panicked")
			result.Outcome = models.OutcomeProtocolFailure
			result.Detail = fmt.Sprintf("panic: %v", p)
		}
		result.Duration = time.Since(startedAt)
		transition(log, terminalStates[result.Outcome])
	}()

	transition(log, stateIdle)
	transition(log, stateLoggingIn)

	cred, err := r.factory.NewLoginClient().Login(ctx, account)
	if err != nil {
		return fail(result, fmt.Errorf("login: %w", err))
	}

	transition(log, stateLoggedIn)
	transition(log, stateKeepingAlive)

	if err = r.factory.NewKeepAliveSession().KeepAlive(ctx, cred); err != nil {
		return fail(result, fmt.Errorf("keep-alive: %w", err))
	}

	result.Outcome = models.OutcomeSuccess
	return result
}

// loggerFrom prefers the logger carried by ctx, which the scheduler enriches
// with the pass id, over the one given at construction.
func (r *accountRunner) loggerFrom(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return r.logger
}

func transition(log *logger.Logger, state runState) {
	log.Debug().Str("state", string(state)).Msg("account state")
}

func fail(result models.RunResult, err error) models.RunResult {
	result.Outcome = outcomeOf(err)
	result.Detail = err.Error()
	return result
}

// outcomeOf classifies an error from the adapter layer. Anything the adapter
// did not classify is treated as a protocol failure.
func outcomeOf(err error) models.Outcome {
	switch {
	case err == nil:
		return models.OutcomeSuccess
	case errors.Is(err, adapter.ErrAuthFailure):
		return models.OutcomeAuthFailure
	case errors.Is(err, adapter.ErrNetworkFailure),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return models.OutcomeNetworkFailure
	default:
		return models.OutcomeProtocolFailure
	}
}
