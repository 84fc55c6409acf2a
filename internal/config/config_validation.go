// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the runtime config satisfies all invariants before
// any pass starts. Accounts and schedule are checked during conversion.
func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if err := cfg.Logging.validate(); err != nil {
		return err
	}

	if cfg.Status.Address != "" {
		var addr NetAddress
		if err := addr.Set(cfg.Status.Address); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidStatusConfig, cfg.Status.Address, err)
		}
	}

	return nil
}

func (a ClientAdapter) validate() error {
	if a.RequestTimeout <= 0 || a.AckTimeout <= 0 {
		return fmt.Errorf("%w: request %s, ack %s", ErrInvalidTimeouts, a.RequestTimeout, a.AckTimeout)
	}

	for _, raw := range []string{a.FormTokenURL, a.LoginURL, a.Origin} {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidRelayConfig, raw)
		}
	}

	if a.WebSocketScheme != "ws" && a.WebSocketScheme != "wss" {
		return fmt.Errorf("%w: websocket scheme %q", ErrInvalidRelayConfig, a.WebSocketScheme)
	}

	if strings.TrimSpace(a.UserAgent) == "" {
		return fmt.Errorf("%w: empty user agent", ErrInvalidRelayConfig)
	}

	return nil
}

func (l ClientLogging) validate() error {
	level := strings.ToLower(l.Level)
	if level == "warning" {
		level = "warn"
	}
	if _, err := zerolog.ParseLevel(level); err != nil || level == "" {
		return fmt.Errorf("%w: level %q", ErrInvalidLoggingConfig, l.Level)
	}

	switch strings.ToLower(l.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLoggingConfig, l.Format)
	}

	return nil
}
