// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

// parseEnv populates cfg from ICKA_* variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// When vars is nil the process environment is used; otherwise only vars is
// consulted.
func parseEnv(cfg *StructuredConfig, vars map[string]string) error {
	opts := env.Options{
		Prefix: EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(false): parseBool,
		},
	}
	if vars != nil {
		opts.Environment = vars
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// readDotEnv reads KEY=VALUE pairs from a dotenv file without touching the
// process environment.
func readDotEnv(path string) (map[string]string, error) {
	vars, err := gotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dotenv file %s: %w", path, err)
	}

	return vars, nil
}

// parseBool extends strconv.ParseBool with the yes/no and on/off spellings
// accepted for ICKA_* switches.
func parseBool(value string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q: want one of 1/0, true/false, yes/no, on/off", value)
	}
	return b, nil
}
