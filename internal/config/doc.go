// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for icka.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every field they set):
//  1. Command-line flags
//  2. ICKA_* environment variables
//  3. A .env file in the working directory
//  4. A JSON or YAML config file (-c / -config / ICKA_CONFIG)
//  5. Built-in defaults
//
// The accounts themselves come either from an accounts file or from a
// single email/password pair. The main entry point is [GetClientConfig].
package config
