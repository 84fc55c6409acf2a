// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the icka runtime: relay adapters, the account runner,
// the scheduler and the optional status server.
//
// App logs every pass report and turns the outcome of a one-shot run into an
// error the command can map to an exit code.
package client
