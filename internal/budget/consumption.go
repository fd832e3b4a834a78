// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package budget computes envelope consumption and period totals over
// decrypted amounts. It has no knowledge of storage or encryption.
package budget

import (
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/shopspring/decimal"
)

// Line is the part of a budget line the engine needs.
type Line interface {
	GetID() string
	GetKind() models.Kind
	GetAmount() decimal.Decimal
}

// Entry is the part of a transaction the engine needs. An empty
// GetBudgetLineID marks a free transaction.
type Entry interface {
	GetKind() models.Kind
	GetAmount() decimal.Decimal
	GetBudgetLineID() string
}

// Consumption is derived per line and never persisted.
// Remaining = line amount - Consumed and may be negative.
type Consumption struct {
	Line      Line
	Consumed  decimal.Decimal
	Remaining decimal.Decimal
	Allocated []Entry
	Count     int
}

// IsOverConsumed reports whether more was spent than planned.
func (c Consumption) IsOverConsumed() bool {
	return c.Remaining.IsNegative()
}

// Calculator computes consumption. The zero value is not usable; use
// [NewCalculator].
type Calculator struct {
	includeIncome bool
}

// Option configures a [Calculator].
type Option func(*Calculator)

// WithIncomeInConsumption selects the consumption rule.
//
// true (default): every allocated transaction counts, summed as signed.
// false: only expense and saving transactions count, summed as absolute values.
func WithIncomeInConsumption(include bool) Option {
	return func(c *Calculator) {
		c.includeIncome = include
	}
}

// NewCalculator returns a Calculator with the given options applied.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{includeIncome: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComputeConsumption computes the consumption of one line over entries.
// Entries allocated to other lines and free entries are ignored.
func (c *Calculator) ComputeConsumption(line Line, entries []Entry) Consumption {
	allocated := make([]Entry, 0)
	for _, e := range entries {
		if lineID := e.GetBudgetLineID(); lineID != "" && lineID == line.GetID() {
			allocated = append(allocated, e)
		}
	}
	return c.consumption(line, allocated)
}

// ComputeAllConsumptions computes consumption for every line, keyed by line
// id. Entries are grouped by line once. Rollover lines are skipped.
func (c *Calculator) ComputeAllConsumptions(lines []Line, entries []Entry) map[string]Consumption {
	byLine := groupByLine(entries)

	result := make(map[string]Consumption, len(lines))
	for _, line := range lines {
		if IsRolloverLineID(line.GetID()) {
			continue
		}
		result[line.GetID()] = c.consumption(line, byLine[line.GetID()])
	}
	return result
}

func (c *Calculator) consumption(line Line, allocated []Entry) Consumption {
	counted := make([]Entry, 0, len(allocated))
	consumed := decimal.Zero

	for _, e := range allocated {
		switch {
		case c.includeIncome:
			consumed = consumed.Add(e.GetAmount())
		case e.GetKind().IsOutflow():
			consumed = consumed.Add(e.GetAmount().Abs())
		default:
			continue
		}
		counted = append(counted, e)
	}

	return Consumption{
		Line:      line,
		Consumed:  consumed,
		Remaining: line.GetAmount().Sub(consumed),
		Allocated: counted,
		Count:     len(counted),
	}
}

func groupByLine(entries []Entry) map[string][]Entry {
	byLine := make(map[string][]Entry)
	for _, e := range entries {
		if lineID := e.GetBudgetLineID(); lineID != "" {
			byLine[lineID] = append(byLine[lineID], e)
		}
	}
	return byLine
}
