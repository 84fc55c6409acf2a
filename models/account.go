// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is one relay identity kept alive by the scheduler.
// Accounts are loaded once at startup and never mutated afterwards.
type Account struct {
	// Email is the relay login and the key every RunResult is attributed to.
	// Uniqueness is not enforced: a duplicated entry is simply run twice.
	Email string `json:"email" yaml:"email"`

	// Password is sent to the relay login endpoint only.
	// It is never logged, reported or marshalled.
	Password string `json:"-" yaml:"-"`
}

// String returns the account email without the password, so accounts can be
// passed to fmt and loggers.
func (a Account) String() string {
	return a.Email
}

// Settings controls how the scheduler drives passes over the account set.
type Settings struct {
	// Forever repeats passes until the process is terminated. When false,
	// exactly one pass runs.
	Forever bool

	// Interval is the suspension between two passes in forever mode.
	// It must be strictly positive when Forever is set.
	Interval time.Duration

	// BatchSize caps the number of accounts attempted back to back before the
	// scheduler pauses. Zero or negative means the whole pass is one batch.
	BatchSize int

	// BatchPause is slept between batches (never after the last one) to stay
	// under the relay's login rate limit.
	BatchPause time.Duration

	// Concurrency is the number of accounts of one batch processed in
	// parallel. Values below 1 are treated as 1 (sequential).
	Concurrency int
}
