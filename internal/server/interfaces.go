// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of a transport server managed by this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts the server down
	// gracefully. It returns nil after a clean shutdown.
	Run(ctx context.Context) error

	// Shutdown stops the server and waits for in-flight requests until ctx
	// expires.
	Shutdown(ctx context.Context) error

	// Addr returns the address the server listens on.
	Addr() string
}
