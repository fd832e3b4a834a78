// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEncryptionNotSetUp: the user has no key record yet; the client must
	// fetch a salt first.
	ErrEncryptionNotSetUp = errors.New("encryption is not set up for user")

	// ErrInvalidClientKey: the client key is missing or has the wrong length.
	ErrInvalidClientKey = errors.New("invalid client key")

	// ErrMissingDataKey: the operation needs a DEK in the context and there
	// is none.
	ErrMissingDataKey = errors.New("data encryption key is missing")

	// ErrAmountMissing: a stored amount is NULL where a value is required.
	ErrAmountMissing = errors.New("stored amount is missing")

	ErrBudgetLineNotInBudget = errors.New("budget line does not belong to budget")
	ErrSeedSaltMismatch      = errors.New("stored salt differs from the seed salt")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
