// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Kind classifies budget lines and transactions.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
	KindSaving  Kind = "saving"
)

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindSaving:
		return true
	default:
		return false
	}
}

// IsOutflow reports whether money of this kind leaves the available balance.
func (k Kind) IsOutflow() bool {
	return k == KindExpense || k == KindSaving
}

// Recurrence tells whether a budget line is copied into every new period.
type Recurrence string

const (
	RecurrenceFixed  Recurrence = "fixed"
	RecurrenceOneOff Recurrence = "one_off"
)
