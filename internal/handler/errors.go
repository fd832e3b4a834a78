// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned when the server configuration has
	// no HTTP address. The application fails at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNoTokenSignKey = errors.New("token sign key is not configured")
)
