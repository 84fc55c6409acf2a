// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interval parses the human-readable sleep intervals used in forever
// mode ("1h", "90m", "1.5h", "2h30m").
//
// The grammar is smaller than [time.ParseDuration]: each segment
// is an unsigned, possibly fractional number immediately followed by one of
// the units s, m, h or d. Segments are summed and the total must be strictly
// positive.
package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInterval is returned for any string that does not describe a
// strictly positive interval. It is a configuration error and is fatal at
// startup.
var ErrInvalidInterval = errors.New("invalid interval")

const day = 24 * time.Hour

var units = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': day,
}

// Parse converts raw into a [time.Duration].
//
// Examples:
//
//	Parse("1h")    // 1h0m0s
//	Parse("90m")   // 1h30m0s
//	Parse("1.5h")  // 1h30m0s
//	Parse("2h30m") // 2h30m0s
//
// Every failure wraps [ErrInvalidInterval].
func Parse(raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, invalid(raw, "empty value")
	}

	var total float64
	for s != "" {
		n := numberPrefix(s)
		if n == 0 {
			return 0, invalid(raw, "expected a number")
		}

		value, err := strconv.ParseFloat(s[:n], 64)
		if err != nil {
			return 0, invalid(raw, "malformed number "+strconv.Quote(s[:n]))
		}

		if n == len(s) {
			return 0, invalid(raw, "missing unit after "+s[:n])
		}
		scale, ok := units[s[n]]
		if !ok {
			return 0, invalid(raw, "unknown unit "+strconv.Quote(s[n:n+1]))
		}

		total += value * float64(scale)
		s = s[n+1:]
	}

	// float64(math.MaxInt64) rounds up to 1<<63, which does not fit.
	if total >= math.MaxInt64 {
		return 0, invalid(raw, "interval overflows")
	}

	// Sub-nanosecond totals truncate to zero.
	d := time.Duration(total)
	if d <= 0 {
		return 0, invalid(raw, "interval must be positive")
	}

	return d, nil
}

// MustParse is like Parse but panics on error. It is intended for constants
// and tests.
func MustParse(raw string) time.Duration {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func numberPrefix(s string) int {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	return i
}

func invalid(raw, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidInterval, raw, reason)
}
