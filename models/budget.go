// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is one budget period of a user. It groups budget lines and
// transactions; the (Month, Year) pair is the period key.
type Budget struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Budget.
func (b Budget) TableName() string {
	return "budget"
}

// BudgetLine is an envelope: a planned ceiling for one category within a
// budget period. Consumption is derived and never stored on the line.
type BudgetLine struct {
	ID         string     `json:"id"`
	BudgetID   string     `json:"budget_id"`
	Name       string     `json:"name"`
	Kind       Kind       `json:"kind"`
	Recurrence Recurrence `json:"recurrence"`

	// Amount is the decrypted ceiling. It is only meaningful after the
	// service layer has opened EncryptedAmount.
	Amount decimal.Decimal `json:"amount"`

	// EncryptedAmount is the stored envelope. Nil means the amount is not set.
	EncryptedAmount *string `json:"-"`
}

// TableName returns the name of the database table associated with BudgetLine.
func (l BudgetLine) TableName() string {
	return "budget_line"
}

func (l BudgetLine) GetID() string              { return l.ID }
func (l BudgetLine) GetKind() Kind              { return l.Kind }
func (l BudgetLine) GetAmount() decimal.Decimal { return l.Amount }

// Transaction is a single money movement inside a budget period.
type Transaction struct {
	ID       string `json:"id"`
	BudgetID string `json:"budget_id"`

	// BudgetLineID allocates the transaction to an envelope. Empty means a
	// free transaction that only affects the period totals.
	BudgetLineID string `json:"budget_line_id,omitempty"`

	Name            string          `json:"name"`
	Kind            Kind            `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`

	// EncryptedAmount is the stored envelope. Nil means the amount is not set.
	EncryptedAmount *string `json:"-"`
}

// TableName returns the name of the database table associated with Transaction.
func (t Transaction) TableName() string {
	return "transactions"
}

func (t Transaction) GetKind() Kind              { return t.Kind }
func (t Transaction) GetAmount() decimal.Decimal { return t.Amount }
func (t Transaction) GetBudgetLineID() string    { return t.BudgetLineID }
