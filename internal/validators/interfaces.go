// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ledger inputs before they reach the services'
// business rules.
//
// A Validator accepts any supported value and, optionally, the names of the
// fields to check. Without field names every field of the value is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
