// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastaval/icka-multi-account/models"
)

var testAccount = models.Account{Email: "a@example.com", Password: "hunter2"}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := newFakeRelay(t,
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": "tok-123"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "tok-123", r.Header.Get("X-Auth-FormToken"))
			assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))
			assert.Equal(t, "a@example.com", r.PostForm.Get("email"))
			assert.Equal(t, "hunter2", r.PostForm.Get("password"))
			assert.Equal(t, "tok-123", r.PostForm.Get("token"))

			writeJSON(w, http.StatusOK, map[string]any{
				"success":        true,
				"session":        "sess-1",
				"websocket_host": "relay.example:8443",
				"websocket_path": "/websocket/2",
			})
		},
	)

	cred, err := newTestFactory(t, srv.URL).NewLoginClient().Login(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, models.SessionCredential{
		Session:      "sess-1",
		WebSocketURL: "ws://relay.example:8443/websocket/2?exclude_archives=1",
	}, cred)
}

func TestLogin_KeepsRelayQuery(t *testing.T) {
	srv := newFakeRelay(t, issueToken("tok"), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"session":        "sess-1",
			"websocket_host": "relay.example",
			"websocket_path": "/websocket/5?since=42",
		})
	})

	cred, err := newTestFactory(t, srv.URL).NewLoginClient().Login(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, "ws://relay.example/websocket/5?exclude_archives=1&since=42", cred.WebSocketURL)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        any
		wantErr     error
		wantMessage string
	}{
		{
			name:        "rejected credentials",
			status:      http.StatusOK,
			body:        map[string]any{"success": false, "message": "invalid_password"},
			wantErr:     ErrAuthFailure,
			wantMessage: "invalid_password",
		},
		{
			name:        "rejected without message",
			status:      http.StatusOK,
			body:        map[string]any{"success": false},
			wantErr:     ErrAuthFailure,
			wantMessage: "login rejected",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        map[string]any{"success": false, "message": "auth"},
			wantErr:     ErrAuthFailure,
			wantMessage: "auth",
		},
		{
			name:    "bad request",
			status:  http.StatusBadRequest,
			body:    "bad form",
			wantErr: ErrAuthFailure,
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			body:    nil,
			wantErr: ErrAuthFailure,
		},
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        map[string]any{"message": "slow down"},
			wantErr:     ErrNetworkFailure,
			wantMessage: "slow down",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantErr:     ErrProtocolFailure,
			wantMessage: "http 500",
		},
		{
			name:    "missing session",
			status:  http.StatusOK,
			body:    map[string]any{"success": true, "websocket_host": "relay.example"},
			wantErr: ErrProtocolFailure,
		},
		{
			name:    "missing host",
			status:  http.StatusOK,
			body:    map[string]any{"success": true, "session": "sess"},
			wantErr: ErrProtocolFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeRelay(t, issueToken("tok"), func(w http.ResponseWriter, r *http.Request) {
				if s, ok := tt.body.(string); ok {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(s))
					return
				}
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, tt.body)
			})

			cred, err := newTestFactory(t, srv.URL).NewLoginClient().Login(context.Background(), testAccount)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, cred)
			assert.NotContains(t, err.Error(), testAccount.Password)
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	srv := newFakeRelay(t, issueToken("tok"), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := newTestFactory(t, srv.URL).NewLoginClient().Login(context.Background(), testAccount)

	assert.ErrorIs(t, err, ErrProtocolFailure)
}

func TestLogin_FormTokenNotIssued(t *testing.T) {
	var loginCalls atomic.Int32
	srv := newFakeRelay(t,
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": false})
		},
		func(w http.ResponseWriter, r *http.Request) {
			loginCalls.Add(1)
		},
	)

	_, err := newTestFactory(t, srv.URL).NewLoginClient().Login(context.Background(), testAccount)

	assert.ErrorIs(t, err, ErrProtocolFailure)
	assert.Zero(t, loginCalls.Load(), "login must not be attempted without a form token")
}

func TestLogin_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	_, err := newTestFactory(t, baseURL).NewLoginClient().Login(context.Background(), testAccount)

	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.NotContains(t, err.Error(), testAccount.Password)
}

func TestLogin_ContextCancelled(t *testing.T) {
	srv := newFakeRelay(t, issueToken("tok"), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFactory(t, srv.URL).NewLoginClient().Login(ctx, testAccount)

	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.ErrorIs(t, err, context.Canceled)
}
