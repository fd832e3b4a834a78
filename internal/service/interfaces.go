// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EncryptionService manages per-user key records and turns client keys into
// request-scoped data encryption keys.
type EncryptionService interface {
	// GetOrCreateSalt returns the user's key record, creating it with a fresh
	// salt on first use.
	GetOrCreateSalt(ctx context.Context, userID string) (models.EncryptionKey, error)

	// ValidateKey checks clientKey against the stored key-check. The first
	// successful call stores the key-check.
	ValidateKey(ctx context.Context, userID string, clientKey []byte) error

	// DeriveRequestKey derives the DEK and verifies it. The caller owns the
	// returned secret and must destroy it.
	DeriveRequestKey(ctx context.Context, userID string, clientKey []byte) (*crypto.Secret, error)

	// ChangePin re-encrypts every amount of the user under the key derived
	// from newClientKey and newSalt, and replaces the key record, in one
	// database transaction.
	ChangePin(ctx context.Context, userID string, oldClientKey, newClientKey, newSalt []byte, iterations int) error
}

// LedgerService reads and writes budget data. Every method except
// CurrentPeriod needs the request DEK in the context.
type LedgerService interface {
	BudgetConsumption(ctx context.Context, userID, budgetID string, includeIncome bool) (models.ConsumptionResponse, error)
	BudgetSummary(ctx context.Context, userID, budgetID string) (models.SummaryResponse, error)
	CreateTransaction(ctx context.Context, userID, budgetID string, req models.CreateTransactionRequest) (models.Transaction, error)
	CurrentPeriod(ctx context.Context, userID string, now time.Time) (models.PeriodResponse, error)
}

// SeedService encrypts plaintext amounts left by a data import.
type SeedService interface {
	Seed(ctx context.Context, pin, saltHex, userID string) (store.RewriteResult, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
