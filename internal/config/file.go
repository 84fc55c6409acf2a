// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same tags serve JSON and YAML.
type StructuredFileConfig struct {
	Email        string `json:"email" yaml:"email"`
	Password     string `json:"password" yaml:"password"`
	AccountsFile string `json:"accounts_file" yaml:"accounts_file"`

	Schedule struct {
		Forever           *bool  `json:"forever" yaml:"forever"`
		SleepInterval     string `json:"sleep_interval" yaml:"sleep_interval"`
		BatchSize         *int   `json:"batch_size" yaml:"batch_size"`
		BatchSleepSeconds *int   `json:"batch_sleep_seconds" yaml:"batch_sleep_seconds"`
		Concurrency       *int   `json:"concurrency" yaml:"concurrency"`
	} `json:"schedule,omitempty" yaml:"schedule,omitempty"`

	Relay struct {
		FormTokenURL    string   `json:"formtoken_url" yaml:"formtoken_url"`
		LoginURL        string   `json:"login_url" yaml:"login_url"`
		Origin          string   `json:"origin" yaml:"origin"`
		WebSocketScheme string   `json:"websocket_scheme" yaml:"websocket_scheme"`
		UserAgent       string   `json:"user_agent" yaml:"user_agent"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		AckTimeout      Duration `json:"ack_timeout" yaml:"ack_timeout"`
	} `json:"relay,omitempty" yaml:"relay,omitempty"`

	Logging struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"logging,omitempty" yaml:"logging,omitempty"`

	Status struct {
		Address string `json:"address" yaml:"address"`
	} `json:"status,omitempty" yaml:"status,omitempty"`
}

// parseFile decodes a config file, choosing YAML for .yaml/.yml extensions
// and JSON otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Email:        fileCfg.Email,
		Password:     fileCfg.Password,
		AccountsFile: fileCfg.AccountsFile,
		Schedule: Schedule{
			Forever:           fileCfg.Schedule.Forever,
			SleepInterval:     fileCfg.Schedule.SleepInterval,
			BatchSize:         fileCfg.Schedule.BatchSize,
			BatchSleepSeconds: fileCfg.Schedule.BatchSleepSeconds,
			Concurrency:       fileCfg.Schedule.Concurrency,
		},
		Relay: Relay{
			FormTokenURL:    fileCfg.Relay.FormTokenURL,
			LoginURL:        fileCfg.Relay.LoginURL,
			Origin:          fileCfg.Relay.Origin,
			WebSocketScheme: fileCfg.Relay.WebSocketScheme,
		},
		Transport: Transport{
			UserAgent:      fileCfg.Relay.UserAgent,
			RequestTimeout: time.Duration(fileCfg.Relay.RequestTimeout),
			AckTimeout:     time.Duration(fileCfg.Relay.AckTimeout),
		},
		Logging: Logging{
			Level:  fileCfg.Logging.Level,
			Format: fileCfg.Logging.Format,
		},
		Status: Status{
			Address: fileCfg.Status.Address,
		},
		ConfigFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML accepts either a duration string or an integer number of
// nanoseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
