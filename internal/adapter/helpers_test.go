// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/rastaval/icka-multi-account/internal/config"
	"github.com/rastaval/icka-multi-account/internal/logger"
)

const (
	testOrigin    = "https://www.irccloud.com"
	testUserAgent = "icka-test"
)

func testAdapterConfig(baseURL string) config.ClientAdapter {
	return config.ClientAdapter{
		FormTokenURL:    baseURL + "/chat/auth-formtoken",
		LoginURL:        baseURL + "/chat/login",
		Origin:          testOrigin,
		WebSocketScheme: "ws",
		UserAgent:       testUserAgent,
		RequestTimeout:  2 * time.Second,
		AckTimeout:      500 * time.Millisecond,
	}
}

func newTestFactory(t *testing.T, baseURL string, opts ...FactoryOption) SessionFactory {
	t.Helper()
	f, err := NewRelaySessionFactory(testAdapterConfig(baseURL), logger.Nop(), opts...)
	require.NoError(t, err)
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newFakeRelay serves the two login endpoints with the given handlers.
func newFakeRelay(t *testing.T, formToken, login http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat/auth-formtoken", formToken)
	mux.HandleFunc("POST /chat/login", login)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func issueToken(token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
	}
}

// newWSServer upgrades every request and hands the connection to handle.
// The connection is closed when handle returns.
func newWSServer(t *testing.T, handle func(conn *websocket.Conn, r *http.Request)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handle(conn, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/websocket/2?exclude_archives=1"
}
