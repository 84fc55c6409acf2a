// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Outcome classifies how one account fared during one pass.
type Outcome int

const (
	// OutcomeSuccess means the login and the keep-alive handshake both succeeded.
	OutcomeSuccess Outcome = iota
	// OutcomeAuthFailure means the relay rejected the credentials.
	OutcomeAuthFailure
	// OutcomeNetworkFailure means a transport problem (timeout, DNS, reset).
	OutcomeNetworkFailure
	// OutcomeProtocolFailure means the relay answered in an unexpected way.
	OutcomeProtocolFailure
)

var outcomeNames = map[Outcome]string{
	OutcomeSuccess:         "success",
	OutcomeAuthFailure:     "auth_failure",
	OutcomeNetworkFailure:  "network_failure",
	OutcomeProtocolFailure: "protocol_failure",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the outcome by name in JSON reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText parses an outcome name produced by MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*o = outcome
			return nil
		}
	}
	return fmt.Errorf("unknown outcome: %s", text)
}

// RunResult is the per-account, per-pass verdict handed to the caller for
// reporting. It is never persisted.
type RunResult struct {
	AccountEmail string        `json:"account_email"`
	Outcome      Outcome       `json:"outcome"`
	Detail       string        `json:"detail,omitempty"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
}

// Succeeded reports whether the account was kept alive.
func (r RunResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// PassReport aggregates the results of one pass over every configured
// account. Results keep the configuration order of the accounts.
type PassReport struct {
	// ID uniquely identifies the pass in logs.
	ID string `json:"id"`

	// Number is the 1-based sequence number of the pass within this process.
	Number int `json:"number"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Results []RunResult `json:"results"`
}

// Failed returns the number of accounts that were not kept alive.
func (p PassReport) Failed() int {
	failed := 0
	for _, r := range p.Results {
		if !r.Succeeded() {
			failed++
		}
	}
	return failed
}

// OK reports whether every account of the pass succeeded.
func (p PassReport) OK() bool {
	return p.Failed() == 0
}

// Counts groups the results by outcome.
func (p PassReport) Counts() map[Outcome]int {
	counts := make(map[Outcome]int, len(outcomeNames))
	for _, r := range p.Results {
		counts[r.Outcome]++
	}
	return counts
}
