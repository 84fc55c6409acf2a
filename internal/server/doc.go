// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the optional status HTTP server.
//
// The server implements [workers.Worker], so it can run next to the
// scheduler and stops when the shared context is cancelled.
package server
