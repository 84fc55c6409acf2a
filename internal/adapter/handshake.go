// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/rastaval/icka-multi-account/models"
)

const authRequestID = 1

type authRequest struct {
	Cookie string `json:"cookie"`
	Method string `json:"_method"`
	ReqID  int    `json:"_reqid"`
}

type authReply struct {
	ReqID   *int   `json:"_reqid"`
	Type    string `json:"type"`
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// IRCCloudHandshake authenticates the WebSocket with the session cookie and
// waits for the relay to confirm it.
type IRCCloudHandshake struct{}

// Request implements [Handshake].
func (IRCCloudHandshake) Request(cred models.SessionCredential) ([]byte, error) {
	return json.Marshal(authRequest{
		Cookie: cred.Session,
		Method: "auth",
		ReqID:  authRequestID,
	})
}

// Acknowledge implements [Handshake]. Server-pushed frames (a "type" and no
// "_reqid") are skipped; replies to other request ids are ignored.
func (IRCCloudHandshake) Acknowledge(frame []byte) (bool, error) {
	var reply authReply
	if err := json.Unmarshal(frame, &reply); err != nil {
		return false, protocolError("handshake", "non-JSON frame")
	}

	if reply.ReqID != nil && *reply.ReqID != authRequestID {
		return false, nil
	}

	if reply.Success != nil {
		if *reply.Success {
			return true, nil
		}
		message := reply.Message
		if message == "" {
			message = "session rejected"
		}
		return false, fmt.Errorf("handshake: %w: %s", ErrProtocolFailure, message)
	}

	if reply.ReqID == nil && reply.Type != "" {
		return false, nil
	}

	return false, protocolError("handshake", "unrecognised frame")
}
