// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoReportYet is reported by the status route until the first pass has
// completed.
var ErrNoReportYet = errors.New("no pass has completed yet")
