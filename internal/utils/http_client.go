// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(20*time.Second, "icka")
//	resp, err := client.R().Post("https://example.com/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with its own
// cookie jar, the given request timeout and User-Agent header.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and cookies, so clients built for
// different accounts never share session state.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New()

	// cookiejar.New only fails for a non-nil PublicSuffixList.
	jar, _ := cookiejar.New(nil)
	client.SetCookieJar(jar)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
