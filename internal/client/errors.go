// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrAccountsFailed is returned by App.Run in one-shot mode when at least one
// account was not kept alive.
var ErrAccountsFailed = errors.New("one or more accounts failed")
