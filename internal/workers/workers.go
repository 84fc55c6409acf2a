// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// New groups workers for a single call to Run.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and blocks until all of them have returned.
// The first worker to return, with or without an error, cancels the context
// of the others. Run returns the first non-nil error.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// g records a failure before cancelling gctx, so the error of the worker
	// that stopped first is the one reported.
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			err := worker.Run(gctx)
			if err == nil {
				cancel()
			}
			return err
		})
	}

	return g.Wait()
}
