// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/rastaval/icka-multi-account/internal/logger"
)

// restyLogger routes resty's internal messages through the application
// logger. Request failures are already reported per account, so resty errors
// are demoted to debug.
type restyLogger struct {
	logger *logger.Logger
}

func newRestyLogger(l *logger.Logger) *restyLogger {
	return &restyLogger{logger: l.WithField("component", "resty")}
}

func (r *restyLogger) Errorf(format string, v ...any) {
	r.logger.Debug().Msgf(format, v...)
}

func (r *restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Msgf(format, v...)
}

func (r *restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Msgf(format, v...)
}
