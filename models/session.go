// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionCredential is the opaque result of a successful relay login.
//
// It is owned by the account runner invocation that produced it and is
// dropped at the end of that invocation; passes never reuse credentials.
type SessionCredential struct {
	// Session is the relay session cookie presented during the keep-alive
	// handshake.
	Session string

	// WebSocketURL is the fully qualified keep-alive endpoint assigned to
	// this session by the relay (scheme, host, path and query).
	WebSocketURL string
}

// Valid reports whether the credential carries everything the keep-alive
// handshake needs.
func (c SessionCredential) Valid() bool {
	return c.Session != "" && c.WebSocketURL != ""
}
