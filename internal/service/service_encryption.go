// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
)

type encryptionService struct {
	keys     store.EncryptionKeyRepository
	rewriter store.AmountRewriter
	keyChain crypto.KeyChain

	validator     validators.Validator
	kdfIterations int

	logger *logger.Logger
}

func NewEncryptionService(keys store.EncryptionKeyRepository, rewriter store.AmountRewriter, keyChain crypto.KeyChain, cfg config.App, logger *logger.Logger) EncryptionService {
	return &encryptionService{
		keys:          keys,
		rewriter:      rewriter,
		keyChain:      keyChain,
		validator:     validators.NewLedgerValidator(),
		kdfIterations: kdfIterations(cfg),
		logger:        logger,
	}
}

// GetOrCreateSalt implements [EncryptionService]. Concurrent first calls may
// both generate a salt; the upsert keeps the first one and both callers read
// it back.
func (s *encryptionService) GetOrCreateSalt(ctx context.Context, userID string) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	key, err := s.keys.Get(ctx, userID)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, store.ErrEncryptionKeyNotFound) {
		return models.EncryptionKey{}, fmt.Errorf("error getting encryption key: %w", err)
	}

	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error generating salt: %w", err)
	}

	err = s.keys.Upsert(ctx, models.EncryptionKey{
		UserID:        userID,
		Salt:          salt,
		KDFIterations: s.kdfIterations,
	})
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error saving encryption key: %w", err)
	}
	log.Info().Str("func", "encryptionService.GetOrCreateSalt").Str("user_id", userID).Msg("encryption key record created")

	key, err = s.keys.Get(ctx, userID)
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error reading created encryption key: %w", err)
	}
	return key, nil
}

// ValidateKey implements [EncryptionService].
func (s *encryptionService) ValidateKey(ctx context.Context, userID string, clientKey []byte) error {
	dek, err := s.DeriveRequestKey(ctx, userID, clientKey)
	if err != nil {
		return err
	}
	dek.Destroy()
	return nil
}

// DeriveRequestKey implements [EncryptionService]. Without a stored
// key-check the derived key is accepted and its key-check is stored.
func (s *encryptionService) DeriveRequestKey(ctx context.Context, userID string, clientKey []byte) (*crypto.Secret, error) {
	log := logger.FromContext(ctx)

	if len(clientKey) != crypto.ClientKeyLength {
		return nil, ErrInvalidClientKey
	}

	key, err := s.getKey(ctx, userID)
	if err != nil {
		return nil, err
	}

	dek, err := s.keyChain.DeriveDataKey(clientKey, key.Salt, userID)
	if err != nil {
		log.Err(err).Str("func", "encryptionService.DeriveRequestKey").Str("user_id", userID).Msg("key derivation failed")
		return nil, err
	}

	if !key.HasKeyCheck() {
		key, err = s.storeKeyCheck(ctx, key, dek)
		if err != nil {
			dek.Destroy()
			return nil, err
		}
	}

	if !crypto.VerifyKey(dek.Bytes(), *key.KeyCheck) {
		dek.Destroy()
		log.Warn().Str("func", "encryptionService.DeriveRequestKey").Str("user_id", userID).Msg("client key rejected")
		return nil, crypto.ErrIncorrectPin
	}

	return dek, nil
}

// storeKeyCheck stores the key-check of dek and returns the record as read
// back, which holds whichever key-check won a concurrent first validation.
func (s *encryptionService) storeKeyCheck(ctx context.Context, key models.EncryptionKey, dek *crypto.Secret) (models.EncryptionKey, error) {
	keyCheck, err := crypto.CreateKeyCheck(dek.Bytes())
	if err != nil {
		return models.EncryptionKey{}, err
	}

	key.KeyCheck = &keyCheck
	if err = s.keys.Upsert(ctx, key); err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error saving key check: %w", err)
	}

	stored, err := s.getKey(ctx, key.UserID)
	if err != nil {
		return models.EncryptionKey{}, err
	}
	if !stored.HasKeyCheck() {
		return models.EncryptionKey{}, fmt.Errorf("%w: key check was not stored", store.ErrInvalidStoredValue)
	}

	logger.FromContext(ctx).Info().
		Str("func", "encryptionService.storeKeyCheck").
		Str("user_id", key.UserID).
		Msg("key check stored")
	return stored, nil
}

// ChangePin implements [EncryptionService]. Any amount that fails to decrypt
// with the old key aborts the change and nothing is written.
func (s *encryptionService) ChangePin(ctx context.Context, userID string, oldClientKey, newClientKey, newSalt []byte, iterations int) error {
	log := logger.FromContext(ctx)

	if len(newClientKey) != crypto.ClientKeyLength {
		return ErrInvalidClientKey
	}
	if iterations <= 0 {
		iterations = s.kdfIterations
	}
	newKey := models.EncryptionKey{UserID: userID, Salt: newSalt, KDFIterations: iterations}
	if err := s.validator.Validate(ctx, newKey, validators.FieldSalt, validators.FieldKDFIterations); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	oldDEK, err := s.DeriveRequestKey(ctx, userID, oldClientKey)
	if err != nil {
		return err
	}
	defer oldDEK.Destroy()

	newDEK, err := s.keyChain.DeriveDataKey(newClientKey, newSalt, userID)
	if err != nil {
		return err
	}
	defer newDEK.Destroy()

	keyCheck, err := crypto.CreateKeyCheck(newDEK.Bytes())
	if err != nil {
		return err
	}
	newKey.KeyCheck = &keyCheck

	filter := store.RewriteFilter{
		UserID:     userID,
		ReplaceKey: &newKey,
	}

	result, err := s.rewriter.RewriteAmounts(ctx, filter, func(col store.AmountColumn, rowID, value string) (string, bool, error) {
		amount, err := crypto.DecryptAmount(oldDEK.Bytes(), value)
		if err != nil {
			return "", false, fmt.Errorf("%s %s: %w", col, rowID, err)
		}

		envelope, err := crypto.EncryptAmount(newDEK.Bytes(), amount)
		if err != nil {
			return "", false, fmt.Errorf("%s %s: %w", col, rowID, err)
		}
		return envelope, true, nil
	})
	if err != nil {
		log.Err(err).Str("func", "encryptionService.ChangePin").Str("user_id", userID).Msg("pin change aborted")
		return fmt.Errorf("error re-encrypting amounts: %w", err)
	}

	log.Info().
		Str("func", "encryptionService.ChangePin").
		Str("user_id", userID).
		Int("rewritten", result.Rewritten).
		Msg("pin changed")
	return nil
}

func (s *encryptionService) getKey(ctx context.Context, userID string) (models.EncryptionKey, error) {
	key, err := s.keys.Get(ctx, userID)
	if errors.Is(err, store.ErrEncryptionKeyNotFound) {
		return models.EncryptionKey{}, ErrEncryptionNotSetUp
	}
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error getting encryption key: %w", err)
	}
	return key, nil
}
