// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists encryption key records and budget data.
//
// Amount columns are nullable TEXT holding AES-GCM envelopes. The store never
// decrypts: it moves envelopes in and out and rewrites them atomically for
// PIN changes and seeding.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/migrations"
)

// DB is a database handle shared by all repositories. It knows its goose
// dialect, its placeholder format and how to classify driver errors.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	placeholder        sq.PlaceholderFormat
	dialect            string
	logger             *logger.Logger
}

// NewConnect opens PostgreSQL for postgres:// DSNs and SQLite otherwise.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the driver's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.placeholder == nil {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// rowLock returns mode for dialects with row level locks and "" otherwise.
// SQLite connections are limited to one, so its transactions never overlap.
func (db *DB) rowLock(mode string) string {
	if db.dialect != migrations.DialectPostgres {
		return ""
	}
	return mode
}

// lockKeyCheck reads the key-check of userID inside tx and holds a row lock
// of the given mode on the key record until tx ends.
func (db *DB) lockKeyCheck(ctx context.Context, tx *sql.Tx, userID, mode string) (sql.NullString, error) {
	var keyCheck sql.NullString

	query, args, err := buildLockKeyCheckQuery(db.builder(), userID, db.rowLock(mode))
	if err != nil {
		return keyCheck, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&keyCheck)
	if errors.Is(err, sql.ErrNoRows) {
		return keyCheck, ErrEncryptionKeyNotFound
	}
	if err != nil {
		return keyCheck, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return keyCheck, nil
}

// classify returns the retry classification of err.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func closeOnError(conn *sql.DB, err error) error {
	if closeErr := conn.Close(); closeErr != nil {
		return fmt.Errorf("%w (close: %v)", err, closeErr)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.ForeignKeyViolation || isSQLiteForeignKeyViolation(err)
}
