// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport, service and
// client layers: typed context keys, JSON responses, the resty client and
// JWT handling.
package utils

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id (string).
	UserIDCtxKey = contextKey("userID")

	// DataKeyCtxKey holds the request-scoped data encryption key (*crypto.Secret).
	DataKeyCtxKey = contextKey("dataKey")

	// TraceIDCtxKey holds the request trace id (string).
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the user id put into ctx by the auth
// middleware. ok is false when it is missing or empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithDataKey returns a copy of ctx carrying the request DEK.
func WithDataKey(ctx context.Context, dek *crypto.Secret) context.Context {
	return context.WithValue(ctx, DataKeyCtxKey, dek)
}

// GetDataKeyFromContext returns the request DEK if it is present and has not
// been destroyed.
func GetDataKeyFromContext(ctx context.Context) (*crypto.Secret, bool) {
	dek, ok := ctx.Value(DataKeyCtxKey).(*crypto.Secret)
	return dek, ok && dek.IsAlive()
}

// GetTraceIDFromContext returns the trace id of the request, "" if none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
