// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/utils"
)

// errorResponse is the JSON body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// lastReport serves the report of the most recent pass, or 404 while the
// first pass is still running.
func (h *Handler) lastReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, ok := h.reports.Last()
	if !ok {
		if _, err := utils.WriteJSON(w, errorResponse{Error: ErrNoReportYet.Error()}, http.StatusNotFound); err != nil {
			log.Err(err).Msg("writing status response failed")
		}
		return
	}

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		log.Err(err).Msg("writing status response failed")
	}
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.buildInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version response failed")
	}
}
