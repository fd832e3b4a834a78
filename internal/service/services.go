// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the ledger's business logic between the HTTP
// transport and the store. Amounts are decrypted and encrypted here and
// nowhere else.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
)

type Services struct {
	EncryptionService EncryptionService
	LedgerService     LedgerService
	SeedService       SeedService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, keyChain crypto.KeyChain, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	encryptionService := NewEncryptionService(storages.EncryptionKeyRepository, storages.AmountRewriter, keyChain, cfg.App, logger)

	return &Services{
		EncryptionService: encryptionService,
		LedgerService:     NewLedgerService(storages.BudgetRepository, logger),
		SeedService:       NewSeedService(storages.EncryptionKeyRepository, storages.AmountRewriter, keyChain, cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}

func kdfIterations(cfg config.App) int {
	if cfg.KDFIterations > 0 {
		return cfg.KDFIterations
	}
	return crypto.DefaultKDFIterations
}
