// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rastaval/icka-multi-account/models"
)

// LoadAccounts returns the configured account set. An accounts file takes
// precedence over the single email/password pair.
func LoadAccounts(accountsFile, email, password string) ([]models.Account, error) {
	if accountsFile != "" {
		f, err := os.Open(accountsFile)
		if err != nil {
			return nil, fmt.Errorf("error opening accounts file: %w", err)
		}
		defer f.Close()

		accounts, err := ParseAccounts(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", accountsFile, err)
		}
		return accounts, nil
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrNoAccounts
	}

	return []models.Account{{Email: email, Password: password}}, nil
}

// ParseAccounts reads one account per line in the form email:password or
// email,password. The line is split on the first separator, so passwords may
// contain either character. Blank lines and lines starting with '#' are
// skipped.
func ParseAccounts(r io.Reader) ([]models.Account, error) {
	var accounts []models.Account

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sep := strings.IndexAny(line, ":,")
		if sep < 0 {
			return nil, fmt.Errorf("%w: line %d: expected email:password", ErrMalformedAccount, lineNo)
		}

		email := strings.TrimSpace(line[:sep])
		password := strings.TrimSpace(line[sep+1:])
		if email == "" || password == "" {
			return nil, fmt.Errorf("%w: line %d: empty email or password", ErrMalformedAccount, lineNo)
		}

		accounts = append(accounts, models.Account{Email: email, Password: password})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading accounts: %w", err)
	}

	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	return accounts, nil
}
