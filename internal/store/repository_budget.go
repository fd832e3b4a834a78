// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// budgetRepository is the SQL implementation of [BudgetRepository] over the
// "budget", "budget_line", "transactions" and "user_settings" tables.
type budgetRepository struct {
	*DB
	logger *logger.Logger
}

// NewBudgetRepository constructs a [BudgetRepository].
func NewBudgetRepository(db *DB, logger *logger.Logger) BudgetRepository {
	logger.Debug().Msg("creating budget repository")
	return &budgetRepository{
		DB:     db,
		logger: logger,
	}
}

// GetBudget returns the budget if it belongs to userID, otherwise
// [ErrBudgetNotFound].
func (r *budgetRepository) GetBudget(ctx context.Context, userID, budgetID string) (models.Budget, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBudgetQuery(r.builder(), userID, budgetID)
	if err != nil {
		return models.Budget{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var b models.Budget
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).
			Scan(&b.ID, &b.UserID, &b.Month, &b.Year, &b.Description, &b.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Budget{}, ErrBudgetNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetBudget").
			Str("budget_id", budgetID).
			Msg("failed to get budget")
		return models.Budget{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return b, nil
}

// ListBudgets returns every budget of userID ordered by period.
func (r *budgetRepository) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBudgetsQuery(r.builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var budgets []models.Budget
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		budgets = make([]models.Budget, 0, 12)
		for rows.Next() {
			var b models.Budget
			if err := rows.Scan(&b.ID, &b.UserID, &b.Month, &b.Year, &b.Description, &b.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			budgets = append(budgets, b)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.ListBudgets").
			Str("user_id", userID).
			Msg("failed to list budgets")
		return nil, err
	}

	return budgets, nil
}

// GetBudgetLines returns the lines of one budget with their stored envelopes.
func (r *budgetRepository) GetBudgetLines(ctx context.Context, budgetID string) ([]models.BudgetLine, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBudgetLinesQuery(r.builder(), budgetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lines []models.BudgetLine
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		lines = make([]models.BudgetLine, 0, 16)
		for rows.Next() {
			var (
				l      models.BudgetLine
				amount sql.NullString
			)
			if err := rows.Scan(&l.ID, &l.BudgetID, &l.Name, &l.Kind, &l.Recurrence, &amount); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			if amount.Valid {
				l.EncryptedAmount = &amount.String
			}
			lines = append(lines, l)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetBudgetLines").
			Str("budget_id", budgetID).
			Msg("failed to get budget lines")
		return nil, err
	}

	return lines, nil
}

// GetTransactions returns the transactions of one budget ordered by date.
func (r *budgetRepository) GetTransactions(ctx context.Context, budgetID string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTransactionsQuery(r.builder(), budgetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var transactions []models.Transaction
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		transactions = make([]models.Transaction, 0, 64)
		for rows.Next() {
			var (
				t      models.Transaction
				lineID sql.NullString
				amount sql.NullString
			)
			err := rows.Scan(&t.ID, &t.BudgetID, &lineID, &t.Name, &t.Kind, &amount, &t.TransactionDate, &t.CreatedAt)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			t.BudgetLineID = lineID.String
			if amount.Valid {
				t.EncryptedAmount = &amount.String
			}
			transactions = append(transactions, t)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetTransactions").
			Str("budget_id", budgetID).
			Msg("failed to get transactions")
		return nil, err
	}

	return transactions, nil
}

// CreateTransaction inserts one transaction. The amount must already be an
// envelope. The key record is read under a share lock in the same database
// transaction, so a concurrent amount rewrite either sees the new row or
// makes check fail.
func (r *budgetRepository) CreateTransaction(ctx context.Context, userID string, transaction models.Transaction, check KeyCheckFunc) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTransactionQuery(r.builder(), transaction)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "budgetRepository.CreateTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	keyCheck, err := r.lockKeyCheck(ctx, tx, userID, lockForShare)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.CreateTransaction").
			Str("user_id", userID).
			Msg("failed to lock encryption key")
		return err
	}
	if !keyCheck.Valid || !check(keyCheck.String) {
		log.Warn().
			Str("func", "budgetRepository.CreateTransaction").
			Str("user_id", userID).
			Str("transaction_id", transaction.ID).
			Msg("encryption key changed, transaction rejected")
		return ErrEncryptionKeyChanged
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.CreateTransaction").
			Str("budget_id", transaction.BudgetID).
			Str("transaction_id", transaction.ID).
			Msg("failed to insert transaction")

		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", ErrInvalidReference, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		log.Error().
			Str("func", "budgetRepository.CreateTransaction").
			Str("transaction_id", transaction.ID).
			Msg("no rows inserted")
		return ErrTransactionNotSaved
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "budgetRepository.CreateTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "budgetRepository.CreateTransaction").
		Str("budget_id", transaction.BudgetID).
		Str("transaction_id", transaction.ID).
		Msg("transaction saved")
	return nil
}

// GetPayDayOfMonth implements [BudgetRepository]. Missing settings and a
// NULL column both mean "calendar months" and yield 0.
func (r *budgetRepository) GetPayDayOfMonth(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPayDayQuery(r.builder(), userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payDay sql.NullInt64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&payDay)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "budgetRepository.GetPayDayOfMonth").
			Str("user_id", userID).
			Msg("failed to get pay day")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return int(payDay.Int64), nil
}
