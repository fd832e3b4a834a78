// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client SDK of the ledger API.
//
// The PIN never leaves the client: [LedgerAdapter.Unlock] fetches the user's
// salt, derives the client key locally with PBKDF2 and keeps it in guarded
// memory. Every call that touches amounts sends it as X-Client-Key.
//
// HTTP statuses are mapped to the sentinels in errors.go, so callers match
// with [errors.Is].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// LedgerAdapter talks to the ledger server on behalf of one user.
type LedgerAdapter interface {
	// Version returns the server version. No authentication is needed.
	Version(ctx context.Context) (string, error)

	// Salt returns the user's salt and iterations, creating them on first use.
	Salt(ctx context.Context) (models.SaltResponse, error)

	// Unlock derives the client key from pin and validates it on the server.
	// The first successful unlock of a user fixes the PIN.
	Unlock(ctx context.Context, pin string) error

	// Lock destroys the client key held by the adapter.
	Lock()

	IsUnlocked() bool

	// ChangePin re-keys every amount of the user under newPin and a fresh
	// salt. The adapter must be unlocked with the current PIN.
	ChangePin(ctx context.Context, newPin string) error

	CurrentPeriod(ctx context.Context, date time.Time) (models.PeriodResponse, error)
	Consumption(ctx context.Context, budgetID string, includeIncome bool) (models.ConsumptionResponse, error)
	Summary(ctx context.Context, budgetID string) (models.SummaryResponse, error)
	CreateTransaction(ctx context.Context, budgetID string, req models.CreateTransactionRequest) (models.Transaction, error)
}
