// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/hex"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-budget-keeper/models"
)

const (
	tableEncryptionKey = "user_encryption_key"
	tableUserSettings  = "user_settings"
	tableBudget        = "budget"
	tableBudgetLine    = "budget_line"
	tableTransactions  = "transactions"

	lockForUpdate = "FOR UPDATE"
	lockForShare  = "FOR SHARE"

	upsertEncryptionKeySuffix = `ON CONFLICT (user_id) DO UPDATE SET
		key_check = COALESCE(user_encryption_key.key_check, EXCLUDED.key_check),
		updated_at = EXCLUDED.updated_at`
)

var (
	encryptionKeyColumns = []string{"user_id", "salt", "kdf_iterations", "key_check", "created_at", "updated_at"}
	budgetColumns        = []string{"id", "user_id", "month", "year", "description", "created_at"}
	budgetLineColumns    = []string{"id", "budget_id", "name", "kind", "recurrence", "amount"}
	transactionColumns   = []string{"id", "budget_id", "budget_line_id", "name", "kind", "amount", "transaction_date", "created_at"}
)

func buildUpsertEncryptionKeyQuery(b sq.StatementBuilderType, key models.EncryptionKey, now time.Time) (string, []any, error) {
	return b.Insert(tableEncryptionKey).
		Columns(encryptionKeyColumns...).
		Values(key.UserID, hex.EncodeToString(key.Salt), key.KDFIterations, nullableString(key.KeyCheck), now, now).
		Suffix(upsertEncryptionKeySuffix).
		ToSql()
}

func buildGetEncryptionKeyQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(encryptionKeyColumns...).
		From(tableEncryptionKey).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildLockKeyCheckQuery reads the key-check of one user. lock is appended
// as a locking clause when not empty.
func buildLockKeyCheckQuery(b sq.StatementBuilderType, userID, lock string) (string, []any, error) {
	q := b.Select("key_check").
		From(tableEncryptionKey).
		Where(sq.Eq{"user_id": userID})
	if lock != "" {
		q = q.Suffix(lock)
	}
	return q.ToSql()
}

// buildReplaceEncryptionKeyQuery overwrites salt, iterations and key-check.
// Only used inside an amount rewrite transaction.
func buildReplaceEncryptionKeyQuery(b sq.StatementBuilderType, key models.EncryptionKey, now time.Time) (string, []any, error) {
	return b.Update(tableEncryptionKey).
		Set("salt", hex.EncodeToString(key.Salt)).
		Set("kdf_iterations", key.KDFIterations).
		Set("key_check", nullableString(key.KeyCheck)).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": key.UserID}).
		ToSql()
}

func buildGetBudgetQuery(b sq.StatementBuilderType, userID, budgetID string) (string, []any, error) {
	return b.Select(budgetColumns...).
		From(tableBudget).
		Where(sq.Eq{"id": budgetID, "user_id": userID}).
		ToSql()
}

func buildListBudgetsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(budgetColumns...).
		From(tableBudget).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("year", "month").
		ToSql()
}

func buildGetBudgetLinesQuery(b sq.StatementBuilderType, budgetID string) (string, []any, error) {
	return b.Select(budgetLineColumns...).
		From(tableBudgetLine).
		Where(sq.Eq{"budget_id": budgetID}).
		OrderBy("id").
		ToSql()
}

func buildGetTransactionsQuery(b sq.StatementBuilderType, budgetID string) (string, []any, error) {
	return b.Select(transactionColumns...).
		From(tableTransactions).
		Where(sq.Eq{"budget_id": budgetID}).
		OrderBy("transaction_date", "id").
		ToSql()
}

func buildInsertTransactionQuery(b sq.StatementBuilderType, t models.Transaction) (string, []any, error) {
	var lineID any
	if t.BudgetLineID != "" {
		lineID = t.BudgetLineID
	}

	return b.Insert(tableTransactions).
		Columns(transactionColumns...).
		Values(t.ID, t.BudgetID, lineID, t.Name, string(t.Kind), nullableString(t.EncryptedAmount), t.TransactionDate, t.CreatedAt).
		ToSql()
}

func buildGetPayDayQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("pay_day_of_month").
		From(tableUserSettings).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildSelectAmountsQuery lists non-null amounts of one column, optionally
// restricted to the budgets of one user.
func buildSelectAmountsQuery(b sq.StatementBuilderType, col AmountColumn, userID string) (string, []any, error) {
	q := b.Select("t.id", "t."+col.Column).
		From(col.Table + " t").
		Where(sq.NotEq{"t." + col.Column: nil}).
		OrderBy("t.id")

	if userID != "" {
		q = q.Join(tableBudget + " b ON b.id = t.budget_id").
			Where(sq.Eq{"b.user_id": userID})
	}

	return q.ToSql()
}

func buildUpdateAmountQuery(b sq.StatementBuilderType, col AmountColumn, rowID, value string) (string, []any, error) {
	return b.Update(col.Table).
		Set(col.Column, value).
		Where(sq.Eq{"id": rowID}).
		ToSql()
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
