// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

func TestAuth(t *testing.T) {
	expired, err := utils.GenerateJWTToken(testIssuer, testUserID, -time.Minute, testSignKey)
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken(testIssuer, testUserID, time.Hour, "other-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", testUserID, time.Hour, testSignKey)
	require.NoError(t, err)
	notUUID, err := utils.GenerateJWTToken(testIssuer, "42", time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "no scheme", header: "token-only", wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + otherKey.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + otherIssuer.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "subject is not a user id", header: "Bearer " + notUUID.SignedString, wantStatus: http.StatusUnauthorized},
		{name: "valid", header: bearer(t), wantStatus: http.StatusOK, wantUserID: testUserID},
		{name: "lowercase scheme", header: "bearer " + strings.TrimPrefix(bearer(t), "Bearer "), wantStatus: http.StatusOK, wantUserID: testUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestWithClientKey(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		deriveErr  error
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusBadRequest},
		{name: "not hex", header: "zz", wantStatus: http.StatusBadRequest},
		{name: "wrong length", header: "abcd", deriveErr: service.ErrInvalidClientKey, wantStatus: http.StatusBadRequest},
		{name: "incorrect pin", header: testClientKeyHex, deriveErr: crypto.ErrIncorrectPin, wantStatus: http.StatusForbidden},
		{name: "encryption not set up", header: testClientKeyHex, deriveErr: service.ErrEncryptionNotSetUp, wantStatus: http.StatusPreconditionFailed},
		{name: "master key problem", header: testClientKeyHex, deriveErr: crypto.ErrKeyDerivationFailed, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			if tt.deriveErr != nil {
				ts.encryption.EXPECT().DeriveRequestKey(gomock.Any(), testUserID, gomock.Any()).Return(nil, tt.deriveErr)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(withUserID(req, testUserID))
			if tt.header != "" {
				req.Header.Set(clientKeyHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.withClientKey(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestWithClientKey_DataKeyLivesForRequestOnly(t *testing.T) {
	h, ts := newTestHandler(t)

	dek := testDEK()
	ts.encryption.EXPECT().DeriveRequestKey(gomock.Any(), testUserID, testClientKey).Return(dek, nil)

	var seen *crypto.Secret
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		seen, ok = utils.GetDataKeyFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(withUserID(req, testUserID))
	req.Header.Set(clientKeyHeader, testClientKeyHex)
	rr := httptest.NewRecorder()
	h.withClientKey(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Same(t, dek, seen)
	assert.False(t, dek.IsAlive())
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantGenerated bool
	}{
		{name: "reuses incoming id", incoming: "my-custom-trace-id"},
		{name: "generates uuid", incoming: "", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var fromContext string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromContext = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			assert.Equal(t, got, fromContext)
			if tt.wantGenerated {
				assert.NoError(t, uuid.Validate(got))
			} else {
				assert.Equal(t, tt.incoming, got)
			}
		})
	}
}

func TestWithLogging_WritesAccessEntryWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/version?x=1", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	req.Header.Set(clientKeyHeader, testClientKeyHex)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"trace-123"`)
	assert.Contains(t, out, `"uri":"/api/v1/version?x=1"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":15`)
	assert.NotContains(t, out, testClientKeyHex)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("ok"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, w.size)
}

func withUserID(r *http.Request, userID string) context.Context {
	return context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
}
