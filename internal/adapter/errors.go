// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Failure classes. Every error returned by this package wraps one of them.
var (
	// ErrAuthFailure means the relay rejected the credentials.
	ErrAuthFailure = errors.New("authentication rejected")
	// ErrNetworkFailure means the relay could not be reached or did not
	// answer in time.
	ErrNetworkFailure = errors.New("network failure")
	// ErrProtocolFailure means the relay answered in an unexpected way.
	ErrProtocolFailure = errors.New("protocol failure")
)
