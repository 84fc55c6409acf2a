// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"

	"github.com/rastaval/icka-multi-account/models"
)

type memoryReportStorage struct {
	mu     sync.RWMutex
	last   *models.PassReport
	passes int
}

// NewReportStorage returns an empty in-memory ReportStorage safe for
// concurrent use.
func NewReportStorage() ReportStorage {
	return &memoryReportStorage{}
}

func (s *memoryReportStorage) Save(report models.PassReport) {
	report.Results = slices.Clone(report.Results)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &report
	s.passes++
}

func (s *memoryReportStorage) Last() (models.PassReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return models.PassReport{}, false
	}

	report := *s.last
	report.Results = slices.Clone(report.Results)
	return report, true
}

func (s *memoryReportStorage) Passes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.passes
}
