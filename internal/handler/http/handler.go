// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/store"
	"github.com/rastaval/icka-multi-account/models"
)

type Handler struct {
	reports   store.ReportStorage
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(reports store.ReportStorage, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		reports:   reports,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
