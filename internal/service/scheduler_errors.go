// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoAccounts = errors.New("scheduler needs at least one account")
	ErrNoRunner   = errors.New("scheduler needs an account runner")
)
