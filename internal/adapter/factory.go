// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/rastaval/icka-multi-account/internal/config"
	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/utils"
)

type relaySessionFactory struct {
	cfg       config.ClientAdapter
	handshake Handshake

	logger *logger.Logger
}

// FactoryOption customises a factory built by [NewRelaySessionFactory].
type FactoryOption func(*relaySessionFactory)

// WithHandshake replaces the default [IRCCloudHandshake].
func WithHandshake(h Handshake) FactoryOption {
	return func(f *relaySessionFactory) {
		f.handshake = h
	}
}

// NewRelaySessionFactory constructs the production [SessionFactory].
// It validates the relay endpoints in adapterCfg once, so that the clients it
// creates later cannot fail to build.
//
// Returns an error if an endpoint is not an absolute http(s) URL or the
// websocket scheme is neither ws nor wss.
func NewRelaySessionFactory(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...FactoryOption) (SessionFactory, error) {
	var err error
	if adapterCfg.FormTokenURL, err = normalizeURL(adapterCfg.FormTokenURL); err != nil {
		return nil, fmt.Errorf("invalid form token url: %w", err)
	}
	if adapterCfg.LoginURL, err = normalizeURL(adapterCfg.LoginURL); err != nil {
		return nil, fmt.Errorf("invalid login url: %w", err)
	}

	switch adapterCfg.WebSocketScheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("invalid websocket scheme %q", adapterCfg.WebSocketScheme)
	}

	f := &relaySessionFactory{
		cfg:       adapterCfg,
		handshake: IRCCloudHandshake{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include an http(s) scheme and host")
	}

	return u.String(), nil
}

// NewLoginClient implements [SessionFactory].
func (f *relaySessionFactory) NewLoginClient() LoginClient {
	client := utils.NewHTTPClient(f.cfg.RequestTimeout, f.cfg.UserAgent)
	client.SetLogger(newRestyLogger(f.logger))

	return &relayLoginClient{
		client:          client,
		formTokenURL:    f.cfg.FormTokenURL,
		loginURL:        f.cfg.LoginURL,
		webSocketScheme: f.cfg.WebSocketScheme,
		logger:          f.logger,
	}
}

// NewKeepAliveSession implements [SessionFactory].
func (f *relaySessionFactory) NewKeepAliveSession() KeepAliveSession {
	header := http.Header{}
	if f.cfg.Origin != "" {
		header.Set("Origin", f.cfg.Origin)
	}
	if f.cfg.UserAgent != "" {
		header.Set("User-Agent", f.cfg.UserAgent)
	}

	return &relayKeepAliveSession{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: f.cfg.RequestTimeout,
		},
		header:     header,
		handshake:  f.handshake,
		ackTimeout: f.cfg.AckTimeout,
		logger:     f.logger,
	}
}
