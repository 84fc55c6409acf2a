// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the read-only status surface of icka.
//
// It exposes liveness, the build version and the report of the last
// completed pass. Every request gets a trace id and an access log line.
package http
