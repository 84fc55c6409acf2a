// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the concurrency primitives used by icka.
//
// [Pool] runs a bounded number of short jobs (one account run each) and waits
// for all of them. [Workers] runs long-lived components (the scheduler, the
// status server) side by side and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any long-lived
// component run by [Workers].
//
// Run blocks until the worker is done or ctx is cancelled. A worker stopped
// through ctx should return nil or ctx.Err().
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Job is one unit of work submitted to a [Pool]. Jobs report their outcome
// through their own closure; they cannot fail the pool.
type Job func(ctx context.Context)
