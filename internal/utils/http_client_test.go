// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(time.Second, "test-agent")

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient(3*time.Second, "test-agent")

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", got)
	}
	if got := client.Header.Get("User-Agent"); got != "test-agent" {
		t.Errorf("expected User-Agent 'test-agent', got '%s'", got)
	}
	if client.GetClient().Jar == nil {
		t.Error("expected a cookie jar to be configured")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Two clients must share neither the resty client nor the cookie jar.
	client1 := NewHTTPClient(time.Second, "")
	client2 := NewHTTPClient(time.Second, "")

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
	if client1.GetClient().Jar == client2.GetClient().Jar {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different cookie jars")
	}
}

func TestNewHTTPClient_CookiesStayPerClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			return
		}
		if _, err := r.Cookie("session"); err == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	owner := NewHTTPClient(time.Second, "")
	other := NewHTTPClient(time.Second, "")

	if _, err := owner.R().Get(srv.URL + "/set"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := owner.R().Get(srv.URL + "/check")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected owner to send its cookie, got status %d", resp.StatusCode())
	}

	resp, err = other.R().Get(srv.URL + "/check")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		t.Errorf("expected other client to have no cookie, got status %d", resp.StatusCode())
	}
}
