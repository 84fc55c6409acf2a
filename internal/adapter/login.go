// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/internal/utils"
	"github.com/rastaval/icka-multi-account/models"
)

// Header and query names of the relay login protocol.
const (
	formTokenHeader = "X-Auth-FormToken"
	excludeArchives = "exclude_archives"
)

type formTokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type loginResponse struct {
	Success       bool   `json:"success"`
	Session       string `json:"session"`
	WebSocketHost string `json:"websocket_host"`
	WebSocketPath string `json:"websocket_path"`
	Message       string `json:"message"`
}

type relayLoginClient struct {
	client *utils.HTTPClient

	formTokenURL    string
	loginURL        string
	webSocketScheme string

	logger *logger.Logger
}

// Login implements [LoginClient]. It fetches a form token, posts the
// credentials together with the token and turns the relay answer into a
// session credential whose WebSocketURL points at the relay-assigned
// keep-alive endpoint.
func (c *relayLoginClient) Login(ctx context.Context, account models.Account) (models.SessionCredential, error) {
	token, err := c.formToken(ctx)
	if err != nil {
		return models.SessionCredential{}, err
	}

	var payload loginResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(formTokenHeader, token).
		SetFormData(map[string]string{
			"email":    account.Email,
			"password": account.Password,
			"token":    token,
		}).
		Post(c.loginURL)
	if err != nil {
		return models.SessionCredential{}, transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionCredential{}, err
	}

	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.SessionCredential{}, protocolError("decode login response", "%v", err)
	}

	if !payload.Success {
		message := payload.Message
		if message == "" {
			message = "login rejected"
		}
		return models.SessionCredential{}, fmt.Errorf("%w: %s", ErrAuthFailure, message)
	}

	if payload.Session == "" || payload.WebSocketHost == "" {
		return models.SessionCredential{}, protocolError("login response", "missing session or websocket host")
	}

	wsURL, err := c.webSocketURL(payload.WebSocketHost, payload.WebSocketPath)
	if err != nil {
		return models.SessionCredential{}, err
	}

	c.logger.Debug().Str("websocket_host", payload.WebSocketHost).Msg("login accepted")

	return models.SessionCredential{Session: payload.Session, WebSocketURL: wsURL}, nil
}

func (c *relayLoginClient) formToken(ctx context.Context) (string, error) {
	var payload formTokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		Post(c.formTokenURL)
	if err != nil {
		return "", transportError("form token request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", protocolError("decode form token response", "%v", err)
	}
	if !payload.Success || payload.Token == "" {
		return "", protocolError("form token response", "no token issued")
	}

	return payload.Token, nil
}

// webSocketURL joins the configured scheme with the relay-assigned host and
// path, keeping any query the relay supplied and excluding archived buffers
// from the initial backlog.
func (c *relayLoginClient) webSocketURL(host, path string) (string, error) {
	if path == "" {
		path = "/"
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", protocolError("login response", "invalid websocket path %q", path)
	}

	query := ref.Query()
	query.Set(excludeArchives, "1")

	u := url.URL{
		Scheme:   c.webSocketScheme,
		Host:     host,
		Path:     ref.Path,
		RawQuery: query.Encode(),
	}

	return u.String(), nil
}
