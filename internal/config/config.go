// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by icka.
const EnvPrefix = "ICKA_"

// StructuredConfig is the raw configuration container. It is populated by
// merging one partial StructuredConfig per source and is later turned into
// the runtime view, [ClientConfig].
//
// Fields that must be able to carry an explicit zero (false, 0) are pointers:
// a nil pointer means "not set by this source".
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : environment variable name, relative to [EnvPrefix].
type StructuredConfig struct {
	// Email and Password describe the single account used when no accounts
	// file is configured.
	// Env: ICKA_EMAIL, ICKA_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// AccountsFile is the path to an email:password list, one per line.
	// Env: ICKA_ACCOUNTS_FILE
	AccountsFile string `env:"ACCOUNTS_FILE"`

	// Schedule controls passes and batching.
	Schedule Schedule

	// Relay holds the remote endpoints.
	Relay Relay `envPrefix:"RELAY_"`

	// Transport holds the user agent and timeouts.
	Transport Transport

	// Logging selects the log level and output format.
	Logging Logging `envPrefix:"LOG_"`

	// Status configures the optional status HTTP endpoint.
	Status Status `envPrefix:"STATUS_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: ICKA_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// Schedule groups the pass and batch settings.
type Schedule struct {
	// Forever repeats passes until the process is signalled.
	// Env: ICKA_FOREVER
	Forever *bool `env:"FOREVER"`

	// SleepInterval is the raw pause between passes ("1h", "90m", "1.5h").
	// It is parsed by the interval package during conversion.
	// Env: ICKA_SLEEP_INTERVAL
	SleepInterval string `env:"SLEEP_INTERVAL"`

	// BatchSize is the number of accounts per batch. Zero means one batch.
	// Env: ICKA_BATCH_SIZE
	BatchSize *int `env:"BATCH_SIZE"`

	// BatchSleepSeconds is the pause between two batches, in seconds.
	// Env: ICKA_BATCH_SLEEP_SECONDS
	BatchSleepSeconds *int `env:"BATCH_SLEEP_SECONDS"`

	// Concurrency is the number of accounts of a batch run in parallel.
	// Env: ICKA_CONCURRENCY
	Concurrency *int `env:"CONCURRENCY"`
}

// Relay holds the relay endpoints.
type Relay struct {
	// Env: ICKA_RELAY_FORMTOKEN_URL
	FormTokenURL string `env:"FORMTOKEN_URL"`

	// Env: ICKA_RELAY_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// Origin is sent with the WebSocket upgrade request.
	// Env: ICKA_RELAY_ORIGIN
	Origin string `env:"ORIGIN"`

	// WebSocketScheme is "wss" in production and "ws" against local fakes.
	// Env: ICKA_RELAY_WEBSOCKET_SCHEME
	WebSocketScheme string `env:"WEBSOCKET_SCHEME"`
}

// Transport holds the outbound request settings shared by the login and
// keep-alive steps.
type Transport struct {
	// UserAgent is sent with every HTTP and WebSocket request.
	// Env: ICKA_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds each HTTP request and the WebSocket dial.
	// Env: ICKA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AckTimeout bounds the wait for the keep-alive acknowledgement.
	// Env: ICKA_ACK_TIMEOUT
	AckTimeout time.Duration `env:"ACK_TIMEOUT"`
}

// Logging holds the logger settings.
type Logging struct {
	// Env: ICKA_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "json" or "console".
	// Env: ICKA_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// Status holds the status endpoint settings.
type Status struct {
	// Address is the listen address in "host:port" form. Empty disables
	// the endpoint.
	// Env: ICKA_STATUS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads and merges the raw configuration from all
// sources, highest priority first:
//  1. args, parsed as command-line flags
//  2. the process environment
//  3. the .env file in the working directory, if present
//  4. the config file named by any of the sources above
//  5. built-in defaults
//
// Returns a merged *StructuredConfig or an error if any source fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withDotEnv(DotEnvFile).
		withFile().
		withDefaults().
		build()
}
