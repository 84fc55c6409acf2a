// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetClientConfig] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoAccounts indicates that neither an accounts file nor an
	// email/password pair yielded at least one account.
	ErrNoAccounts = errors.New("no accounts configured")
	// ErrMalformedAccount indicates an accounts file line that is not
	// email:password.
	ErrMalformedAccount = errors.New("malformed account line")
	// ErrInvalidBatchConfig indicates negative batch values or a
	// concurrency below one.
	ErrInvalidBatchConfig = errors.New("invalid batch configuration")
	// ErrInvalidTimeouts indicates a non-positive request or ack timeout.
	ErrInvalidTimeouts = errors.New("invalid timeout configuration")
	// ErrInvalidRelayConfig indicates unusable relay endpoints, origin,
	// websocket scheme or user agent.
	ErrInvalidRelayConfig = errors.New("invalid relay configuration")
	// ErrInvalidLoggingConfig indicates an unknown log level or format.
	ErrInvalidLoggingConfig = errors.New("invalid logging configuration")
	// ErrInvalidStatusConfig indicates a status address that is not
	// host:port.
	ErrInvalidStatusConfig = errors.New("invalid status configuration")
)
