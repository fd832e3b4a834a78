// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// encryptionKeyRepository is the SQL implementation of [EncryptionKeyRepository]
// over the "user_encryption_key" table. Salts are stored hex encoded.
type encryptionKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewEncryptionKeyRepository constructs an [EncryptionKeyRepository].
func NewEncryptionKeyRepository(db *DB, logger *logger.Logger) EncryptionKeyRepository {
	logger.Debug().Msg("creating encryption key repository")
	return &encryptionKeyRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert implements [EncryptionKeyRepository]. Calling it twice with the
// same record leaves the table unchanged apart from updated_at.
func (r *encryptionKeyRepository) Upsert(ctx context.Context, key models.EncryptionKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertEncryptionKeyQuery(r.builder(), key, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "encryptionKeyRepository.Upsert").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "encryptionKeyRepository.Upsert").
			Str("user_id", key.UserID).
			Str("sqlstate", postgresErrorCode(err)).
			Msg("failed to upsert encryption key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "encryptionKeyRepository.Upsert").
		Str("user_id", key.UserID).
		Bool("with_key_check", key.HasKeyCheck()).
		Msg("encryption key upserted")
	return nil
}

// Get implements [EncryptionKeyRepository].
func (r *encryptionKeyRepository) Get(ctx context.Context, userID string) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEncryptionKeyQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "encryptionKeyRepository.Get").Msg("failed to build query")
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		key      models.EncryptionKey
		saltHex  string
		keyCheck sql.NullString
	)
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&key.UserID,
			&saltHex,
			&key.KDFIterations,
			&keyCheck,
			&key.CreatedAt,
			&key.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptionKey{}, ErrEncryptionKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "encryptionKeyRepository.Get").
			Str("user_id", userID).
			Msg("failed to get encryption key")
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	key.Salt, err = hex.DecodeString(saltHex)
	if err != nil {
		log.Error().
			Str("func", "encryptionKeyRepository.Get").
			Str("user_id", userID).
			Msg("stored salt is not valid hex")
		return models.EncryptionKey{}, fmt.Errorf("%w: salt: %w", ErrInvalidStoredValue, err)
	}
	if keyCheck.Valid {
		key.KeyCheck = &keyCheck.String
	}

	return key, nil
}
