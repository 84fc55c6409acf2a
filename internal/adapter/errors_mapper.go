// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBodyLen = 200

// mapHTTPError classifies a completed HTTP exchange. 2xx yields nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := relayMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthFailure, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: rate limited: %s", ErrNetworkFailure, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrProtocolFailure, resp.StatusCode(), message)
	}
}

// relayMessage extracts the human-readable reason from an error response:
// the JSON "message" field when present, otherwise the trimmed body, and the
// status text as a last resort.
func relayMessage(resp *resty.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen] + "..."
	}

	return body
}

// transportError wraps an error raised before any response was received.
func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetworkFailure, err)
}

// protocolError wraps a malformed or unexpected relay answer.
func protocolError(op string, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrProtocolFailure, fmt.Sprintf(format, args...))
}
