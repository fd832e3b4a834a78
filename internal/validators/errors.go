// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrEmptyName            = errors.New("name is required")
	ErrInvalidKind          = errors.New("invalid kind")
	ErrEmptyAmount          = errors.New("amount is required")
	ErrInvalidSalt          = errors.New("invalid salt")
	ErrInvalidKDFIterations = errors.New("invalid KDF iterations")
)
