// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// AmountColumn names one column holding amount envelopes.
type AmountColumn struct {
	Table  string
	Column string
}

func (c AmountColumn) String() string {
	return c.Table + "." + c.Column
}

// EncryptedColumns lists every column holding amount envelopes.
var EncryptedColumns = []AmountColumn{
	{Table: tableBudgetLine, Column: "amount"},
	{Table: tableTransactions, Column: "amount"},
}

// RewriteFilter restricts a rewrite.
type RewriteFilter struct {
	// UserID limits the rewrite to the budgets of one user. Empty means all rows.
	UserID string

	// ReplaceKey, when set, overwrites the user's key record in the same
	// transaction as the amounts.
	ReplaceKey *models.EncryptionKey
}

// RewriteFunc receives one stored value and returns its replacement.
// Returning changed=false leaves the row untouched. Any error aborts the
// whole rewrite.
type RewriteFunc func(col AmountColumn, rowID, value string) (newValue string, changed bool, err error)

// RewriteResult counts the rows visited and updated.
type RewriteResult struct {
	Scanned   int
	Rewritten int
}

type storedAmount struct {
	id    string
	value string
}

type amountRewriter struct {
	*DB
	logger *logger.Logger
}

// NewAmountRewriter constructs an [AmountRewriter].
func NewAmountRewriter(db *DB, logger *logger.Logger) AmountRewriter {
	logger.Debug().Msg("creating amount rewriter")
	return &amountRewriter{
		DB:     db,
		logger: logger,
	}
}

// RewriteAmounts implements [AmountRewriter]. Rows of each column are read
// completely before any update is issued, so a single connection is enough.
//
// A rewrite scoped to one user first locks that user's key record. Writers
// that check the key under a share lock either finish before the rewrite
// reads any amount or observe the replaced key afterwards.
func (r *amountRewriter) RewriteAmounts(ctx context.Context, filter RewriteFilter, fn RewriteFunc) (RewriteResult, error) {
	log := logger.FromContext(ctx)
	var result RewriteResult

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "amountRewriter.RewriteAmounts").Msg("failed to begin transaction")
		return result, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if filter.UserID != "" {
		_, err = r.lockKeyCheck(ctx, tx, filter.UserID, lockForUpdate)
		if err != nil && !errors.Is(err, ErrEncryptionKeyNotFound) {
			log.Err(err).
				Str("func", "amountRewriter.RewriteAmounts").
				Str("user_id", filter.UserID).
				Msg("failed to lock encryption key")
			return RewriteResult{}, err
		}
	}

	for _, col := range EncryptedColumns {
		amounts, err := r.selectAmounts(ctx, tx, col, filter.UserID)
		if err != nil {
			log.Err(err).
				Str("func", "amountRewriter.RewriteAmounts").
				Str("column", col.String()).
				Msg("failed to read amounts")
			return RewriteResult{}, err
		}

		for _, a := range amounts {
			result.Scanned++

			newValue, changed, err := fn(col, a.id, a.value)
			if err != nil {
				log.Err(err).
					Str("func", "amountRewriter.RewriteAmounts").
					Str("column", col.String()).
					Str("row_id", a.id).
					Msg("failed to rewrite amount")
				return RewriteResult{}, err
			}
			if !changed {
				continue
			}

			if err = r.updateAmount(ctx, tx, col, a.id, newValue); err != nil {
				log.Err(err).
					Str("func", "amountRewriter.RewriteAmounts").
					Str("column", col.String()).
					Str("row_id", a.id).
					Msg("failed to update amount")
				return RewriteResult{}, err
			}
			result.Rewritten++
		}
	}

	if filter.ReplaceKey != nil {
		if err = r.replaceKey(ctx, tx, *filter.ReplaceKey); err != nil {
			log.Err(err).
				Str("func", "amountRewriter.RewriteAmounts").
				Str("user_id", filter.ReplaceKey.UserID).
				Msg("failed to replace encryption key")
			return RewriteResult{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "amountRewriter.RewriteAmounts").Msg("failed to commit transaction")
		return RewriteResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "amountRewriter.RewriteAmounts").
		Int("scanned", result.Scanned).
		Int("rewritten", result.Rewritten).
		Msg("amounts rewritten")
	return result, nil
}

func (r *amountRewriter) selectAmounts(ctx context.Context, tx *sql.Tx, col AmountColumn, userID string) ([]storedAmount, error) {
	query, args, err := buildSelectAmountsQuery(r.builder(), col, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var amounts []storedAmount
	for rows.Next() {
		var a storedAmount
		if err := rows.Scan(&a.id, &a.value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		amounts = append(amounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return amounts, nil
}

func (r *amountRewriter) updateAmount(ctx context.Context, tx *sql.Tx, col AmountColumn, rowID, value string) error {
	query, args, err := buildUpdateAmountQuery(r.builder(), col, rowID, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *amountRewriter) replaceKey(ctx context.Context, tx *sql.Tx, key models.EncryptionKey) error {
	query, args, err := buildReplaceEncryptionKeyQuery(r.builder(), key, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEncryptionKeyNotFound
	}
	return nil
}
