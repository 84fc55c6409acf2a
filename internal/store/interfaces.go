// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/rastaval/icka-multi-account/models"

// ReportStorage holds pass reports produced by the scheduler.
type ReportStorage interface {
	// Save records a finished pass. It replaces the previous last report.
	Save(report models.PassReport)

	// Last returns the most recently saved report. ok is false before the
	// first pass completes.
	Last() (report models.PassReport, ok bool)

	// Passes returns the number of reports saved so far.
	Passes() int
}
