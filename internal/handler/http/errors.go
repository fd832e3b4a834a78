// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport itself, before a service is
// called.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrMissingClientKey = errors.New("missing `X-Client-Key` header")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidQuery     = errors.New("invalid query parameter")
)
