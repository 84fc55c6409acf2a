// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rastaval/icka-multi-account/internal/interval"
	"github.com/rastaval/icka-multi-account/models"
)

// ClientAdapter holds the settings used by the relay login and keep-alive
// adapters.
type ClientAdapter struct {
	// FormTokenURL issues the anti-CSRF token required by the login form.
	FormTokenURL string
	// LoginURL accepts the credentials and returns the session.
	LoginURL string
	// Origin is sent with the WebSocket upgrade request.
	Origin string
	// WebSocketScheme is prefixed to the relay-assigned host and path.
	WebSocketScheme string
	// UserAgent is sent with every outbound request.
	UserAgent string
	// RequestTimeout bounds each HTTP request and the WebSocket dial.
	RequestTimeout time.Duration
	// AckTimeout bounds the wait for the keep-alive acknowledgement.
	AckTimeout time.Duration
}

// ClientLogging holds the logger settings.
type ClientLogging struct {
	Level  string
	Format string
}

// ClientStatus holds the status endpoint settings.
type ClientStatus struct {
	// Address is empty when the endpoint is disabled.
	Address string
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Accounts is the ordered, immutable account set.
	Accounts []models.Account
	// Settings drives the scheduler.
	Settings models.Settings
	// Adapter contains relay endpoints and transport limits.
	Adapter ClientAdapter
	// Logging contains the logger settings.
	Logging ClientLogging
	// Status contains the status endpoint settings.
	Status ClientStatus
}

// GetClientConfig builds and validates the runtime config from args (the
// command line without the program name) and the process environment.
//
// It loads the merged config via [GetStructuredConfig], resolves the
// accounts, converts the schedule into [models.Settings] and validates the
// resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.toClientConfig()
}

func (cfg *StructuredConfig) toClientConfig() (*ClientConfig, error) {
	accounts, err := LoadAccounts(cfg.AccountsFile, cfg.Email, cfg.Password)
	if err != nil {
		return nil, err
	}

	settings, err := cfg.Schedule.settings()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Accounts: accounts,
		Settings: settings,
		Adapter: ClientAdapter{
			FormTokenURL:    cfg.Relay.FormTokenURL,
			LoginURL:        cfg.Relay.LoginURL,
			Origin:          cfg.Relay.Origin,
			WebSocketScheme: cfg.Relay.WebSocketScheme,
			UserAgent:       cfg.Transport.UserAgent,
			RequestTimeout:  cfg.Transport.RequestTimeout,
			AckTimeout:      cfg.Transport.AckTimeout,
		},
		Logging: ClientLogging{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		},
		Status: ClientStatus{
			Address: cfg.Status.Address,
		},
	}

	return clientCfg, clientCfg.validate()
}

// settings converts the raw schedule. The sleep interval is only required
// to be valid in forever mode, since one-shot runs never sleep.
func (s Schedule) settings() (models.Settings, error) {
	settings := models.Settings{
		Forever:     deref(s.Forever),
		BatchSize:   deref(s.BatchSize),
		BatchPause:  time.Duration(deref(s.BatchSleepSeconds)) * time.Second,
		Concurrency: deref(s.Concurrency),
	}

	if s.BatchSize != nil && *s.BatchSize < 0 ||
		s.BatchSleepSeconds != nil && *s.BatchSleepSeconds < 0 ||
		settings.Concurrency < 1 {
		return models.Settings{}, fmt.Errorf("%w: batch size %d, batch sleep %ds, concurrency %d",
			ErrInvalidBatchConfig, settings.BatchSize, deref(s.BatchSleepSeconds), settings.Concurrency)
	}

	if !settings.Forever {
		// A malformed interval leaves Interval zero; one-shot runs never read it.
		if d, err := interval.Parse(s.SleepInterval); err == nil {
			settings.Interval = d
		}
		return settings, nil
	}

	d, err := interval.Parse(s.SleepInterval)
	if err != nil {
		return models.Settings{}, fmt.Errorf("sleep interval: %w", err)
	}
	settings.Interval = d

	return settings, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
