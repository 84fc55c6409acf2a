// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rastaval/icka-multi-account/internal/logger"
	"github.com/rastaval/icka-multi-account/models"
)

const closeWriteTimeout = time.Second

type relayKeepAliveSession struct {
	dialer     *websocket.Dialer
	header     http.Header
	handshake  Handshake
	ackTimeout time.Duration

	logger *logger.Logger
}

// KeepAlive implements [KeepAliveSession].
func (s *relayKeepAliveSession) KeepAlive(ctx context.Context, cred models.SessionCredential) error {
	if !cred.Valid() {
		return protocolError("keep-alive", "incomplete session credential")
	}

	conn, resp, err := s.dialer.DialContext(ctx, cred.WebSocketURL, s.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if errors.Is(err, websocket.ErrBadHandshake) && resp != nil {
			return protocolError("websocket dial", "upgrade refused with http %d", resp.StatusCode)
		}
		return transportError("websocket dial", err)
	}
	defer conn.Close()
	defer s.sendClose(conn)

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	request, err := s.handshake.Request(cred)
	if err != nil {
		return protocolError("build handshake", "%v", err)
	}

	if err = conn.WriteMessage(websocket.TextMessage, request); err != nil {
		return s.connError(ctx, "write handshake", err)
	}

	if err = s.awaitAck(ctx, conn); err != nil {
		return err
	}

	s.logger.Debug().Msg("keep-alive acknowledged")
	return nil
}

// awaitAck reads frames until the handshake accepts one or the ack timeout
// expires.
func (s *relayKeepAliveSession) awaitAck(ctx context.Context, conn *websocket.Conn) error {
	if err := conn.SetReadDeadline(time.Now().Add(s.ackTimeout)); err != nil {
		return s.connError(ctx, "set read deadline", err)
	}

	for {
		messageType, frame, err := conn.ReadMessage()
		if err != nil {
			return s.connError(ctx, "await acknowledgement", err)
		}

		if messageType != websocket.TextMessage {
			return protocolError("await acknowledgement", "unexpected binary frame")
		}

		acked, err := s.handshake.Acknowledge(frame)
		if err != nil {
			if !errors.Is(err, ErrProtocolFailure) {
				err = fmt.Errorf("%w: %w", ErrProtocolFailure, err)
			}
			return err
		}
		if acked {
			return nil
		}
	}
}

// connError classifies an error raised on an open connection. A close frame
// from the relay is a protocol failure; cancellation, timeouts and resets
// are network failures.
func (s *relayKeepAliveSession) connError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return transportError(op, ctxErr)
	}

	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return protocolError(op, "connection closed before acknowledgement (code %d)", closeErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return transportError(op, fmt.Errorf("no acknowledgement within %s: %w", s.ackTimeout, err))
	}

	return transportError(op, err)
}

// sendClose starts the closing handshake. Errors are ignored: the socket is
// torn down right after either way.
func (s *relayKeepAliveSession) sendClose(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout))
}
