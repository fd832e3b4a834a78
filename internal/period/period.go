// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package period maps calendar dates to budget periods.
//
// A budget period is a (month, year) pair. When the user has a pay day
// anchor, a period starts on that day of its month and runs until the day
// before the next pay day, so early-month dates belong to the previous
// month's budget.
package period

import (
	"errors"
	"fmt"
	"time"
)

const (
	minPayDay = 1
	maxPayDay = 31
)

// ErrInvalidPeriod is returned by [Period.Validate].
var ErrInvalidPeriod = errors.New("invalid budget period")

// Period identifies one budget cycle.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Resolve returns the budget period that date belongs to.
//
// A payDay of 0 (unset) or 1 gives plain calendar months. Other values are
// clamped to [1, 31]; out-of-range input is never an error. Dates before the
// pay day fall into the previous calendar month, wrapping January into
// December of the prior year. With payDay 31 every date of a shorter month
// maps to the month before it.
func Resolve(date time.Time, payDay int) Period {
	current := Period{Month: int(date.Month()), Year: date.Year()}

	payDay = clampPayDay(payDay)
	if payDay == minPayDay {
		return current
	}

	if date.Day() >= payDay {
		return current
	}
	return current.Previous()
}

// Compare orders periods by year, then month. It returns -1, 0 or 1.
func Compare(a, b Period) int {
	switch {
	case a.Year < b.Year:
		return -1
	case a.Year > b.Year:
		return 1
	case a.Month < b.Month:
		return -1
	case a.Month > b.Month:
		return 1
	default:
		return 0
	}
}

// IsPast reports whether p ends before the period containing now.
func IsPast(p Period, now time.Time, payDay int) bool {
	return Compare(p, Resolve(now, payDay)) < 0
}

// IsCurrent reports whether p is the period containing now.
func IsCurrent(p Period, now time.Time, payDay int) bool {
	return Compare(p, Resolve(now, payDay)) == 0
}

// Next returns the following period.
func (p Period) Next() Period {
	if p.Month >= 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Previous returns the preceding period.
func (p Period) Previous() Period {
	if p.Month <= 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// String formats the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Validate checks that the period is usable as request input.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 1 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Bounds returns the first and last calendar day (UTC midnight) that
// [Resolve] maps to p for the given pay day.
//
// When the pay day does not exist in p's month (payDay 31 in a 30-day
// month), the period starts on the first day of the following month.
func Bounds(p Period, payDay int) (start, end time.Time) {
	payDay = clampPayDay(payDay)

	start = startOf(p, payDay)
	end = startOf(p.Next(), payDay).AddDate(0, 0, -1)
	return start, end
}

// Contains reports whether date falls into p.
func (p Period) Contains(date time.Time, payDay int) bool {
	return Compare(Resolve(date, payDay), p) == 0
}

func startOf(p Period, payDay int) time.Time {
	if payDay <= daysIn(p.Year, p.Month) {
		return time.Date(p.Year, time.Month(p.Month), payDay, 0, 0, 0, 0, time.UTC)
	}
	next := p.Next()
	return time.Date(next.Year, time.Month(next.Month), 1, 0, 0, 0, 0, time.UTC)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampPayDay(payDay int) int {
	return min(max(payDay, minPayDay), maxPayDay)
}
