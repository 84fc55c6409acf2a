// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args (without the program name) into a partial
// [StructuredConfig]. Only flags present on the command line are copied, so
// an omitted flag never shadows a lower-priority source.
//
// Flags:
//
//	-email / -password single account credentials
//	-accounts-file email:password list
//	-forever run passes until signalled
//	-sleep-interval pause between passes (e.g. "1h", "90m", "1.5h")
//	-batch-size accounts per batch
//	-batch-sleep-seconds pause between batches
//	-concurrency accounts of one batch run in parallel
//	-user-agent HTTP and WebSocket user agent
//	-request-timeout HTTP request and dial timeout (e.g. "20s")
//	-ack-timeout keep-alive acknowledgement timeout (e.g. "15s")
//	-log-level / -log-format logger settings
//	-status-address status endpoint address in format [host]:[port]
//	-c/-config json or yaml file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("icka", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var statusAddress NetAddress
	var email, password, accountsFile string
	var forever bool
	var sleepInterval string
	var batchSize, batchSleepSeconds, concurrency int
	var userAgent string
	var requestTimeout, ackTimeout time.Duration
	var logLevel, logFormat string
	var configPath string

	fs.StringVar(&email, "email", "", "Account email (single-account mode)")
	fs.StringVar(&password, "password", "", "Account password (single-account mode)")
	fs.StringVar(&accountsFile, "accounts-file", "", "File with one email:password per line")
	fs.BoolVar(&forever, "forever", false, "Repeat passes until signalled")
	fs.StringVar(&sleepInterval, "sleep-interval", "", "Pause between passes (e.g., 1h, 90m, 1.5h)")
	fs.IntVar(&batchSize, "batch-size", 0, "Accounts per batch, 0 for a single batch")
	fs.IntVar(&batchSleepSeconds, "batch-sleep-seconds", 0, "Pause between batches in seconds")
	fs.IntVar(&concurrency, "concurrency", 0, "Accounts of one batch processed in parallel")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 20s)")
	fs.DurationVar(&ackTimeout, "ack-timeout", 0, "Keep-alive acknowledgement timeout (e.g., 15s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&logFormat, "log-format", "", "Log format: json or console")
	fs.Var(&statusAddress, "status-address", "Status endpoint address host:port")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected argument %q", fs.Arg(0))
	}

	cfg := &StructuredConfig{
		Email:        email,
		Password:     password,
		AccountsFile: accountsFile,
		Schedule: Schedule{
			SleepInterval: sleepInterval,
		},
		Transport: Transport{
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
			AckTimeout:     ackTimeout,
		},
		Logging: Logging{
			Level:  logLevel,
			Format: logFormat,
		},
		Status: Status{
			Address: statusAddress.String(),
		},
		ConfigFilePath: configPath,
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "forever":
			cfg.Schedule.Forever = &forever
		case "batch-size":
			cfg.Schedule.BatchSize = &batchSize
		case "batch-sleep-seconds":
			cfg.Schedule.BatchSleepSeconds = &batchSleepSeconds
		case "concurrency":
			cfg.Schedule.Concurrency = &concurrency
		}
	})

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
