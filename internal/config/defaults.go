// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, applied as the lowest-priority source.
const (
	DefaultFormTokenURL    = "https://api-3.irccloud.com/chat/auth-formtoken"
	DefaultLoginURL        = "https://www.irccloud.com/chat/login"
	DefaultOrigin          = "https://www.irccloud.com"
	DefaultWebSocketScheme = "wss"
	DefaultUserAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36"

	DefaultSleepInterval     = "1h"
	DefaultBatchSize         = 5
	DefaultBatchSleepSeconds = 300
	DefaultConcurrency       = 1

	DefaultRequestTimeout = 20 * time.Second
	DefaultAckTimeout     = 15 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// DotEnvFile is the name of the optional dotenv file read from the working
// directory.
const DotEnvFile = ".env"

func defaultConfig() *StructuredConfig {
	forever := false
	batchSize := DefaultBatchSize
	batchSleep := DefaultBatchSleepSeconds
	concurrency := DefaultConcurrency

	return &StructuredConfig{
		Schedule: Schedule{
			Forever:           &forever,
			SleepInterval:     DefaultSleepInterval,
			BatchSize:         &batchSize,
			BatchSleepSeconds: &batchSleep,
			Concurrency:       &concurrency,
		},
		Relay: Relay{
			FormTokenURL:    DefaultFormTokenURL,
			LoginURL:        DefaultLoginURL,
			Origin:          DefaultOrigin,
			WebSocketScheme: DefaultWebSocketScheme,
		},
		Transport: Transport{
			UserAgent:      DefaultUserAgent,
			RequestTimeout: DefaultRequestTimeout,
			AckTimeout:     DefaultAckTimeout,
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
