// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastaval/icka-multi-account/models"
)

func TestReportStorage_EmptyBeforeFirstPass(t *testing.T) {
	s := NewReportStorage()

	_, ok := s.Last()
	assert.False(t, ok)
	assert.Zero(t, s.Passes())
}

func TestReportStorage_SaveReplacesLast(t *testing.T) {
	s := NewReportStorage()

	s.Save(models.PassReport{ID: "first", Number: 1})
	s.Save(models.PassReport{ID: "second", Number: 2})

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.ID)
	assert.Equal(t, 2, s.Passes())
}

func TestReportStorage_IsolatedFromCallerMutation(t *testing.T) {
	s := NewReportStorage()
	results := []models.RunResult{{AccountEmail: "a@example.com", Outcome: models.OutcomeSuccess}}

	s.Save(models.PassReport{ID: "p", Results: results})
	results[0].Outcome = models.OutcomeAuthFailure

	last, _ := s.Last()
	assert.Equal(t, models.OutcomeSuccess, last.Results[0].Outcome)

	last.Results[0].AccountEmail = "changed"
	again, _ := s.Last()
	assert.Equal(t, "a@example.com", again.Results[0].AccountEmail)
}

func TestReportStorage_Concurrent(t *testing.T) {
	s := NewReportStorage()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Save(models.PassReport{Number: i + 1})
		}()
		go func() {
			defer wg.Done()
			s.Last()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Passes())
}
