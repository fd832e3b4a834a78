// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs: missing or malformed master key, negative KDF
	// iterations.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs: empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs: missing listen address or token sign key.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs: missing server URL or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
