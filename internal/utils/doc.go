// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes HTTP response writing, per-account HTTP client initialization
// and identifier generation.
package utils
