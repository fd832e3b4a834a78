// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Match with [errors.Is].
var (
	// ErrEncryptionKeyNotFound is returned when the user has no key record yet.
	ErrEncryptionKeyNotFound = errors.New("encryption key was not found")

	// ErrBudgetNotFound is returned when a budget does not exist or belongs
	// to another user.
	ErrBudgetNotFound = errors.New("budget was not found")

	// ErrTransactionNotSaved is returned when an INSERT affected no rows.
	ErrTransactionNotSaved = errors.New("transaction was not saved")

	// ErrInvalidReference is returned on foreign key violations, e.g. a
	// transaction pointing at a missing budget line.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrEncryptionKeyChanged is returned when a write was prepared with a
	// key the user's record no longer holds, e.g. after a concurrent PIN change.
	ErrEncryptionKeyChanged = errors.New("encryption key has changed")

	ErrEmptyDSN = errors.New("database DSN is empty")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrInvalidStoredValue   = errors.New("stored value is malformed")
)
