// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writeTempFileAt(t, path, content)
	return path
}

func writeTempFileAt(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// ── parseFile ─────────────────────────────────────────────────────────────────

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "icka.json", `{
		"email": "a@example.com",
		"password": "secret",
		"schedule": {"forever": true, "sleep_interval": "30m", "batch_size": 0, "concurrency": 2},
		"relay": {"login_url": "http://relay/login", "request_timeout": "5s", "ack_timeout": 2000000000},
		"logging": {"level": "warn"},
		"status": {"address": ":9100"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", cfg.Email)
	assert.Equal(t, "secret", cfg.Password)
	require.NotNil(t, cfg.Schedule.Forever)
	assert.True(t, *cfg.Schedule.Forever)
	assert.Equal(t, "30m", cfg.Schedule.SleepInterval)
	require.NotNil(t, cfg.Schedule.BatchSize)
	assert.Zero(t, *cfg.Schedule.BatchSize)
	assert.Nil(t, cfg.Schedule.BatchSleepSeconds)
	assert.Equal(t, "http://relay/login", cfg.Relay.LoginURL)
	assert.Equal(t, 5*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Transport.AckTimeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":9100", cfg.Status.Address)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "icka.yml", `
accounts_file: /etc/icka/accounts
schedule:
  forever: false
  sleep_interval: 1.5h
  batch_sleep_seconds: 60
relay:
  websocket_scheme: ws
  user_agent: yaml-agent
  request_timeout: 10s
logging:
  format: console
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/icka/accounts", cfg.AccountsFile)
	require.NotNil(t, cfg.Schedule.Forever)
	assert.False(t, *cfg.Schedule.Forever)
	assert.Equal(t, "1.5h", cfg.Schedule.SleepInterval)
	require.NotNil(t, cfg.Schedule.BatchSleepSeconds)
	assert.Equal(t, 60, *cfg.Schedule.BatchSleepSeconds)
	assert.Equal(t, "ws", cfg.Relay.WebSocketScheme)
	assert.Equal(t, "yaml-agent", cfg.Transport.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "icka.json", `{"email":`))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "icka.yaml", "schedule: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "icka.json", `{"relay":{"ack_timeout":"soon"}}`))
		assert.Error(t, err)
	})
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(raw))
}

func TestDuration_YAML(t *testing.T) {
	var v struct {
		A Duration `yaml:"a"`
		B Duration `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 45s\nb: 1000\n"), &v))
	assert.Equal(t, 45*time.Second, time.Duration(v.A))
	assert.Equal(t, time.Microsecond, time.Duration(v.B))
}
