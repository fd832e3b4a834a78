// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrLocked is returned by calls that need the client key before Unlock.
	ErrLocked = errors.New("ledger is locked, unlock with PIN first")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrEncryptionNotSetUp  = errors.New("encryption is not set up")
	ErrInternalServerError = errors.New("internal server error")
)
