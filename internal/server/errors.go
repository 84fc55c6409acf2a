// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoAddress is returned by NewHTTPServer when no listen address is
	// configured.
	ErrNoAddress = errors.New("no listen address configured")

	// ErrNoHandler is returned by NewHTTPServer when the handler is nil.
	ErrNoHandler = errors.New("no http handler provided")
)
