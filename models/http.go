// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaltResponse is returned by GET /encryption/salt. Salt is hex encoded.
type SaltResponse struct {
	Salt          string `json:"salt"`
	KDFIterations int    `json:"kdf_iterations"`
}

// ValidateKeyRequest carries a hex-encoded client key to be checked against
// the stored key-check. The first successful call stores the key-check.
type ValidateKeyRequest struct {
	ClientKey string `json:"client_key"`
}

// ChangePinRequest replaces the user's PIN. The client derives NewClientKey
// from the new PIN, NewSalt and KDFIterations before sending the request.
type ChangePinRequest struct {
	OldClientKey  string `json:"old_client_key"`
	NewClientKey  string `json:"new_client_key"`
	NewSalt       string `json:"new_salt"`
	KDFIterations int    `json:"kdf_iterations"`
}

// PeriodResponse describes a budget period and its calendar bounds.
type PeriodResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// LineConsumption is the wire form of one envelope's consumption.
type LineConsumption struct {
	BudgetLineID     string          `json:"budget_line_id"`
	Name             string          `json:"name"`
	Kind             Kind            `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	Consumed         decimal.Decimal `json:"consumed"`
	Remaining        decimal.Decimal `json:"remaining"`
	TransactionCount int             `json:"transaction_count"`
	OverConsumed     bool            `json:"over_consumed"`
}

// ConsumptionResponse lists consumption for every real line of a budget.
type ConsumptionResponse struct {
	BudgetID string            `json:"budget_id"`
	Lines    []LineConsumption `json:"lines"`
}

// SummaryResponse holds the period totals of one budget.
type SummaryResponse struct {
	BudgetID      string          `json:"budget_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Rollover      decimal.Decimal `json:"rollover"`
	Available     decimal.Decimal `json:"available"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

// CreateTransactionRequest is the body of POST /budgets/{budgetID}/transactions.
// A missing or null amount leaves Amount invalid; it is never read as zero.
type CreateTransactionRequest struct {
	BudgetLineID    string              `json:"budget_line_id,omitempty"`
	Name            string              `json:"name"`
	Kind            Kind                `json:"kind"`
	Amount          decimal.NullDecimal `json:"amount"`
	TransactionDate time.Time           `json:"transaction_date"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}
