// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/store"
	"github.com/rastaval/icka-multi-account/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testBuildInfo = models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

func newTestHandler(reports store.ReportStorage, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return NewHandler(reports, testBuildInfo, log)
}

func serve(h *Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func sampleReport() models.PassReport {
	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return models.PassReport{
		ID:         "pass-1",
		Number:     1,
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
		Results: []models.RunResult{
			{AccountEmail: "a@example.com", Outcome: models.OutcomeSuccess, StartedAt: start, Duration: time.Second},
			{AccountEmail: "b@example.com", Outcome: models.OutcomeAuthFailure, Detail: "invalid password", StartedAt: start},
		},
	}
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	rr := serve(newTestHandler(store.NewReportStorage(), nil), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

func TestStatus_BeforeFirstPass(t *testing.T) {
	rr := serve(newTestHandler(store.NewReportStorage(), nil), http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, ErrNoReportYet.Error(), body.Error)
}

func TestStatus_ServesLastReport(t *testing.T) {
	reports := store.NewReportStorage()
	reports.Save(sampleReport())

	rr := serve(newTestHandler(reports, nil), http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.PassReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "pass-1", got.ID)
	require.Len(t, got.Results, 2)
	assert.Equal(t, models.OutcomeAuthFailure, got.Results[1].Outcome)
	assert.Contains(t, rr.Body.String(), `"outcome":"auth_failure"`)
	assert.NotContains(t, rr.Body.String(), "password\":")
}

func TestVersion(t *testing.T) {
	rr := serve(newTestHandler(store.NewReportStorage(), nil), http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, testBuildInfo, got)
}

func TestRoutes_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusNotFound},
		{name: "POST status", method: http.MethodPost, path: "/status", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "DELETE version", method: http.MethodDelete, path: "/version", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestHandler(store.NewReportStorage(), nil), tt.method, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantAllow != "" {
				assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			}
		})
	}
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantValidUUID bool
	}{
		{name: "incoming trace id is reused", incoming: "my-trace-id", wantSame: true},
		{name: "missing trace id is generated", wantValidUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.incoming != "" {
				header.Set(traceIDHeader, tt.incoming)
			}

			rr := serve(newTestHandler(store.NewReportStorage(), nil), http.MethodGet, "/healthz", header)
			got := rr.Header().Get(traceIDHeader)

			require.NotEmpty(t, got)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(store.NewReportStorage(), &logger.Logger{Logger: zerolog.New(&buf)})

	serve(h, http.MethodGet, "/healthz", nil)

	for _, want := range []string{
		`"method":"GET"`,
		`"uri":"/healthz"`,
		`"status":200`,
		`"size":2`,
		`"duration":`,
		`"trace_id":`,
	} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestResponseWriter_HeaderWrittenOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

func TestRecoverer_PanicBecomes500(t *testing.T) {
	h := newTestHandler(nil, nil)

	// a nil store makes the status route panic
	rr := serve(h, http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
