// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/shopspring/decimal"
)

type seedService struct {
	keys     store.EncryptionKeyRepository
	rewriter store.AmountRewriter
	keyChain crypto.KeyChain

	validator     validators.Validator
	kdfIterations int

	logger *logger.Logger
}

func NewSeedService(keys store.EncryptionKeyRepository, rewriter store.AmountRewriter, keyChain crypto.KeyChain, cfg config.App, logger *logger.Logger) SeedService {
	return &seedService{
		keys:          keys,
		rewriter:      rewriter,
		keyChain:      keyChain,
		validator:     validators.NewLedgerValidator(),
		kdfIterations: kdfIterations(cfg),
		logger:        logger,
	}
}

// Seed implements [SeedService]. Only values that are still plain decimal
// numbers are encrypted, so running it again changes nothing.
func (s *seedService) Seed(ctx context.Context, pin, saltHex, userID string) (store.RewriteResult, error) {
	log := logger.FromContext(ctx)

	if pin == "" {
		return store.RewriteResult{}, fmt.Errorf("%w: pin is required", ErrInvalidDataProvided)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return store.RewriteResult{}, fmt.Errorf("%w: salt must be hex encoded", ErrInvalidDataProvided)
	}

	record := models.EncryptionKey{
		UserID:        userID,
		Salt:          salt,
		KDFIterations: s.kdfIterations,
	}
	if err = s.validator.Validate(ctx, record); err != nil {
		return store.RewriteResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = s.keys.Upsert(ctx, record); err != nil {
		return store.RewriteResult{}, fmt.Errorf("error saving encryption key: %w", err)
	}

	key, err := s.keys.Get(ctx, userID)
	if err != nil {
		return store.RewriteResult{}, fmt.Errorf("error getting encryption key: %w", err)
	}
	if !bytes.Equal(key.Salt, salt) {
		return store.RewriteResult{}, ErrSeedSaltMismatch
	}

	clientKey := crypto.DeriveClientKey(pin, key.Salt, key.KDFIterations, crypto.ClientKeyLength)
	dek, err := s.keyChain.DeriveDataKey(clientKey, key.Salt, userID)
	clear(clientKey)
	if err != nil {
		return store.RewriteResult{}, err
	}
	defer dek.Destroy()

	if key.HasKeyCheck() {
		if !crypto.VerifyKey(dek.Bytes(), *key.KeyCheck) {
			return store.RewriteResult{}, crypto.ErrIncorrectPin
		}
	} else {
		keyCheck, err := crypto.CreateKeyCheck(dek.Bytes())
		if err != nil {
			return store.RewriteResult{}, err
		}
		key.KeyCheck = &keyCheck
		if err = s.keys.Upsert(ctx, key); err != nil {
			return store.RewriteResult{}, fmt.Errorf("error saving key check: %w", err)
		}
	}

	result, err := s.rewriter.RewriteAmounts(ctx, store.RewriteFilter{UserID: userID}, func(col store.AmountColumn, rowID, value string) (string, bool, error) {
		if !crypto.IsPlainAmount(value) {
			return value, false, nil
		}

		amount, err := decimal.NewFromString(value)
		if err != nil {
			return "", false, fmt.Errorf("%s %s: %w", col, rowID, err)
		}

		envelope, err := crypto.EncryptAmount(dek.Bytes(), amount)
		if err != nil {
			return "", false, fmt.Errorf("%s %s: %w", col, rowID, err)
		}
		return envelope, true, nil
	})
	if err != nil {
		return store.RewriteResult{}, fmt.Errorf("error encrypting amounts: %w", err)
	}

	log.Info().
		Str("func", "seedService.Seed").
		Str("user_id", userID).
		Int("scanned", result.Scanned).
		Int("encrypted", result.Rewritten).
		Msg("seed finished")
	return result, nil
}
