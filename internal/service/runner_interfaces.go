// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the keep-alive business logic: the per-account
// runner and the scheduler that drives passes over the account set.
package service

import (
	"context"

	"github.com/rastaval/icka-multi-account/models"
)

//go:generate mockgen -source=runner_interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountRunner keeps one account alive once: login, then keep-alive.
type AccountRunner interface {
	// Run never returns an error and never panics. Every failure is
	// reported through the Outcome of the returned result.
	Run(ctx context.Context, account models.Account) models.RunResult
}

// ReportFunc receives every finished pass. It is called from the scheduler
// goroutine and must not block for long.
type ReportFunc func(report models.PassReport)
