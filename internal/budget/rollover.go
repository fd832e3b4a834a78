// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package budget

import (
	"strings"

	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/shopspring/decimal"
)

// RolloverLinePrefix marks synthetic lines that carry the previous period's
// balance. They are display-only and never receive allocations.
const RolloverLinePrefix = "rollover-"

// RolloverLine is the synthetic line shown at the top of a budget.
type RolloverLine struct {
	ID     string
	Kind   models.Kind
	Amount decimal.Decimal
}

// NewRolloverLine builds the rollover line for budgetID. A positive or zero
// balance is shown as income, a deficit as an expense of its absolute value.
func NewRolloverLine(budgetID string, balance decimal.Decimal) RolloverLine {
	kind := models.KindIncome
	if balance.IsNegative() {
		kind = models.KindExpense
	}

	return RolloverLine{
		ID:     RolloverLinePrefix + budgetID,
		Kind:   kind,
		Amount: balance.Abs(),
	}
}

// IsRolloverLineID reports whether id belongs to a synthetic rollover line.
func IsRolloverLineID(id string) bool {
	return strings.HasPrefix(id, RolloverLinePrefix)
}

func (r RolloverLine) GetID() string              { return r.ID }
func (r RolloverLine) GetKind() models.Kind       { return r.Kind }
func (r RolloverLine) GetAmount() decimal.Decimal { return r.Amount }
