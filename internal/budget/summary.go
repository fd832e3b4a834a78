// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package budget

import (
	"slices"

	"github.com/MKhiriev/go-budget-keeper/internal/period"
	"github.com/shopspring/decimal"
)

// Summary holds the totals of one budget period.
//
//	Available     = Income + Rollover
//	EndingBalance = Available - Expenses
type Summary struct {
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Rollover      decimal.Decimal
	Available     decimal.Decimal
	EndingBalance decimal.Decimal
}

// Summarize computes the totals of one period.
//
// Income is the sum of income lines plus free income transactions. Each
// expense or saving line contributes max(planned, consumed), so an
// overspent envelope counts with what was actually spent. Free expense and
// saving transactions are added as absolute values. A transaction allocated
// to a line that is not in lines is treated as free. Rollover lines in lines
// are ignored; pass the carried balance as rollover instead.
func (c *Calculator) Summarize(lines []Line, entries []Entry, rollover decimal.Decimal) Summary {
	byLine := groupByLine(entries)
	known := make(map[string]struct{}, len(lines))

	income := decimal.Zero
	expenses := decimal.Zero

	for _, line := range lines {
		if IsRolloverLineID(line.GetID()) {
			continue
		}
		known[line.GetID()] = struct{}{}

		switch {
		case line.GetKind().IsOutflow():
			consumed := outflow(byLine[line.GetID()])
			expenses = expenses.Add(decimal.Max(line.GetAmount(), consumed))
		default:
			income = income.Add(line.GetAmount())
		}
	}

	for _, e := range entries {
		if _, ok := known[e.GetBudgetLineID()]; ok {
			continue
		}
		if e.GetKind().IsOutflow() {
			expenses = expenses.Add(e.GetAmount().Abs())
		} else {
			income = income.Add(e.GetAmount())
		}
	}

	available := income.Add(rollover)
	return Summary{
		Income:        income,
		Expenses:      expenses,
		Rollover:      rollover,
		Available:     available,
		EndingBalance: available.Sub(expenses),
	}
}

func outflow(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.GetKind().IsOutflow() {
			total = total.Add(e.GetAmount().Abs())
		}
	}
	return total
}

// Month is the decrypted content of one budget.
type Month struct {
	BudgetID string
	Period   period.Period
	Lines    []Line
	Entries  []Entry
}

// MonthSummary is the summary of one month within a rollover chain.
type MonthSummary struct {
	BudgetID string
	Period   period.Period
	Summary
}

// ChainRollovers orders months by period and carries each month's ending
// balance into the next one. The first month starts with a zero rollover.
// Gaps between periods do not reset the balance.
func (c *Calculator) ChainRollovers(months []Month) []MonthSummary {
	ordered := slices.Clone(months)
	slices.SortStableFunc(ordered, func(a, b Month) int {
		return period.Compare(a.Period, b.Period)
	})

	result := make([]MonthSummary, 0, len(ordered))
	rollover := decimal.Zero
	for _, m := range ordered {
		s := c.Summarize(m.Lines, m.Entries, rollover)
		result = append(result, MonthSummary{BudgetID: m.BudgetID, Period: m.Period, Summary: s})
		rollover = s.EndingBalance
	}
	return result
}
