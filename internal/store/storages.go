// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-budget-keeper/internal/logger"

// Storages groups the repositories built on one [DB].
type Storages struct {
	EncryptionKeyRepository EncryptionKeyRepository
	BudgetRepository        BudgetRepository
	AmountRewriter          AmountRewriter
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		EncryptionKeyRepository: NewEncryptionKeyRepository(db, log),
		BudgetRepository:        NewBudgetRepository(db, log),
		AmountRewriter:          NewAmountRewriter(db, log),
	}
}
