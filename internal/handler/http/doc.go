// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the ledger.
//
// Requests pass trace id, access logging and JWT authentication middleware
// before they reach a handler. Routes that read or write amounts also pass
// withClientKey, which turns the X-Client-Key header into a data encryption
// key that lives only for the duration of the request.
package http
