// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EncryptionKeyRepository stores per-user key records.
type EncryptionKeyRepository interface {
	// Upsert creates the record or, if it exists, only fills a missing
	// key-check. Salt and iterations of an existing record never change.
	Upsert(ctx context.Context, key models.EncryptionKey) error

	// Get returns the record of userID or [ErrEncryptionKeyNotFound].
	Get(ctx context.Context, userID string) (models.EncryptionKey, error)
}

// BudgetRepository reads budgets and their envelopes and records transactions.
// Amounts are returned as stored envelopes.
type BudgetRepository interface {
	GetBudget(ctx context.Context, userID, budgetID string) (models.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	GetBudgetLines(ctx context.Context, budgetID string) ([]models.BudgetLine, error)
	GetTransactions(ctx context.Context, budgetID string) ([]models.Transaction, error)

	// CreateTransaction stores transaction if check accepts the key-check
	// currently held by userID's key record. A rejected key-check yields
	// [ErrEncryptionKeyChanged] and nothing is written.
	CreateTransaction(ctx context.Context, userID string, transaction models.Transaction, check KeyCheckFunc) error

	// GetPayDayOfMonth returns the user's pay day anchor, 0 when unset.
	GetPayDayOfMonth(ctx context.Context, userID string) (int, error)
}

// KeyCheckFunc reports whether keyCheck verifies the key an envelope was
// produced with.
type KeyCheckFunc func(keyCheck string) bool

// AmountRewriter rewrites every stored amount inside one database transaction.
type AmountRewriter interface {
	RewriteAmounts(ctx context.Context, filter RewriteFilter, fn RewriteFunc) (RewriteResult, error)
}
