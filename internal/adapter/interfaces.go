// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to keep relay accounts
// alive.
//
// A keep-alive is two steps: [LoginClient] exchanges an account's credentials
// for a [models.SessionCredential] over HTTP, then [KeepAliveSession] opens
// the relay WebSocket with that credential, performs the [Handshake] and
// closes the connection. [SessionFactory] creates a fresh pair for every
// account run, so no client state is shared between accounts.
//
// Every error returned by this package wraps exactly one of [ErrAuthFailure],
// [ErrNetworkFailure] or [ErrProtocolFailure], so callers can classify
// failures with [errors.Is].
package adapter

import (
	"context"

	"github.com/rastaval/icka-multi-account/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LoginClient performs one authenticated HTTP request cycle against the
// relay. Implementations never retry.
type LoginClient interface {
	// Login exchanges the account credentials for a session credential.
	// The password is never included in returned errors.
	Login(ctx context.Context, account models.Account) (models.SessionCredential, error)
}

// KeepAliveSession performs the short-lived WebSocket exchange that marks a
// session as active.
type KeepAliveSession interface {
	// KeepAlive dials the credential's WebSocket endpoint, completes the
	// handshake and closes the connection on every exit path before
	// returning. Cancelling ctx closes the connection promptly.
	KeepAlive(ctx context.Context, cred models.SessionCredential) error
}

// Handshake describes the frames exchanged right after the WebSocket opens.
type Handshake interface {
	// Request returns the first text frame sent to the relay.
	Request(cred models.SessionCredential) ([]byte, error)

	// Acknowledge inspects one received text frame. It returns true once the
	// relay has accepted the session, false to keep waiting for more frames,
	// and an error wrapping [ErrProtocolFailure] when the relay rejected the
	// session or sent something unrecognised.
	Acknowledge(frame []byte) (bool, error)
}

// SessionFactory builds independent transport clients. Every call returns a
// new instance with its own connection pool and cookie jar.
type SessionFactory interface {
	NewLoginClient() LoginClient
	NewKeepAliveSession() KeepAliveSession
}
