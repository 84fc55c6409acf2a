// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs jobs with a bounded number in flight.
type Pool struct {
	limit int
}

// NewPool returns a pool running at most limit jobs at once.
// A limit below 1 is treated as 1, which runs jobs sequentially in
// submission order.
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Limit returns the maximum number of jobs in flight.
func (p *Pool) Limit() int {
	return p.limit
}

// Run executes every job and returns once all of them have finished.
// A job never aborts its siblings, and jobs are started even after ctx is
// cancelled so that each one can report its own cancellation.
func (p *Pool) Run(ctx context.Context, jobs []Job) {
	var g errgroup.Group
	g.SetLimit(p.limit)

	for _, job := range jobs {
		g.Go(func() error {
			job(ctx)
			return nil
		})
	}

	_ = g.Wait()
}
