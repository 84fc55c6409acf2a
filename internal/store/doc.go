// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the outcome of recent passes in memory so the status
// endpoint can serve it.
//
// Nothing is persisted: session credentials and pass reports live only for
// the lifetime of the process.
package store
