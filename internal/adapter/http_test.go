// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const (
	testPin        = "1234"
	testToken      = "test-token"
	testIterations = 1000
	testBudgetID   = "budget-1"
)

var testSalt = []byte("0123456789abcdef")

// fakeLedger is a minimal server that accepts the client key derived from
// testPin and testSalt.
type fakeLedger struct {
	t         *testing.T
	salt      []byte

	mu        sync.Mutex
	acceptKey string

	validateCalls atomic.Int32
	lastClientKey atomic.Value
	changePin     atomic.Value
}

func newFakeLedger(t *testing.T) *fakeLedger {
	t.Helper()
	key := crypto.DeriveClientKey(testPin, testSalt, testIterations, crypto.ClientKeyLength)
	return &fakeLedger{t: t, salt: testSalt, acceptKey: hex.EncodeToString(key)}
}

func (f *fakeLedger) key() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acceptKey
}

func (f *fakeLedger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
		return
	}

	switch r.Method + " " + r.URL.Path {
	case "GET /api/v1/version":
		writeJSON(w, http.StatusOK, models.VersionResponse{Version: "v1.2.3"})
	case "GET /api/v1/encryption/salt":
		writeJSON(w, http.StatusOK, models.SaltResponse{Salt: hex.EncodeToString(f.salt), KDFIterations: testIterations})
	case "POST /api/v1/encryption/validate-key":
		f.validateCalls.Add(1)
		var req models.ValidateKeyRequest
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		if req.ClientKey != f.key() {
			writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "incorrect pin"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case "POST /api/v1/encryption/change-pin":
		var req models.ChangePinRequest
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		if req.OldClientKey != f.key() {
			writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "incorrect pin"})
			return
		}
		f.changePin.Store(req)
		f.mu.Lock()
		f.acceptKey = req.NewClientKey
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	case "GET /api/v1/periods/current":
		writeJSON(w, http.StatusOK, models.PeriodResponse{Month: 3, Year: 2025, Label: r.URL.Query().Get("date")})
	case "GET /api/v1/budgets/" + testBudgetID + "/consumption":
		if !f.checkClientKey(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, models.ConsumptionResponse{
			BudgetID: testBudgetID,
			Lines: []models.LineConsumption{{
				BudgetLineID: "line-1",
				Name:         r.URL.Query().Get("includeIncome"),
				Amount:       decimal.RequireFromString("408"),
				Consumed:     decimal.RequireFromString("1574"),
				Remaining:    decimal.RequireFromString("-1166"),
				OverConsumed: true,
			}},
		})
	case "GET /api/v1/budgets/" + testBudgetID + "/summary":
		if !f.checkClientKey(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, models.SummaryResponse{BudgetID: testBudgetID, Available: decimal.RequireFromString("950")})
	case "POST /api/v1/budgets/" + testBudgetID + "/transactions":
		if !f.checkClientKey(w, r) {
			return
		}
		var req models.CreateTransactionRequest
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, models.Transaction{
			ID:       "tx-1",
			BudgetID: testBudgetID,
			Name:     req.Name,
			Kind:     req.Kind,
			Amount:   req.Amount.Decimal,
		})
	case "GET /api/v1/budgets/missing/summary":
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "budget not found"})
	case "GET /api/v1/budgets/unset/summary":
		writeJSON(w, http.StatusPreconditionFailed, models.ErrorResponse{Error: "encryption is not set up"})
	case "GET /api/v1/budgets/broken/summary":
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	default:
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "route not found"})
	}
}

func (f *fakeLedger) checkClientKey(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get(clientKeyHeader)
	f.lastClientKey.Store(key)
	if key != f.key() {
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "incorrect pin"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestAdapter(t *testing.T, handler http.Handler) LedgerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPLedgerAdapter(&config.ClientConfig{
		ServerAddress:  srv.URL,
		RequestTimeout: 5 * time.Second,
		Token:          testToken,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://ledger.example.com", want: "https://ledger.example.com"},
		{name: "trailing slash", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "surrounding spaces", raw: "  localhost:8080 ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPLedgerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPLedgerAdapter(&config.ClientConfig{ServerAddress: " "}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPLedgerAdapter_Version(t *testing.T) {
	a := newTestAdapter(t, newFakeLedger(t))

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}

func TestHTTPLedgerAdapter_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(newFakeLedger(t))
	t.Cleanup(srv.Close)

	a, err := NewHTTPLedgerAdapter(&config.ClientConfig{
		ServerAddress:  srv.URL,
		RequestTimeout: time.Second,
		Token:          "wrong",
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Salt(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestHTTPLedgerAdapter_Unlock(t *testing.T) {
	fake := newFakeLedger(t)
	a := newTestAdapter(t, fake)

	assert.False(t, a.IsUnlocked())

	require.NoError(t, a.Unlock(context.Background(), testPin))
	assert.True(t, a.IsUnlocked())
	assert.Equal(t, int32(1), fake.validateCalls.Load())

	a.Lock()
	assert.False(t, a.IsUnlocked())
}

func TestHTTPLedgerAdapter_UnlockWrongPin(t *testing.T) {
	fake := newFakeLedger(t)
	a := newTestAdapter(t, fake)

	err := a.Unlock(context.Background(), "9999")
	assert.ErrorIs(t, err, crypto.ErrIncorrectPin)
	assert.False(t, a.IsUnlocked())
}

func TestHTTPLedgerAdapter_WrongPinKeepsPreviousKey(t *testing.T) {
	fake := newFakeLedger(t)
	a := newTestAdapter(t, fake)

	require.NoError(t, a.Unlock(context.Background(), testPin))
	require.ErrorIs(t, a.Unlock(context.Background(), "0000"), crypto.ErrIncorrectPin)
	assert.True(t, a.IsUnlocked())

	_, err := a.Summary(context.Background(), testBudgetID)
	assert.NoError(t, err)
}

func TestHTTPLedgerAdapter_LockedOperations(t *testing.T) {
	a := newTestAdapter(t, newFakeLedger(t))
	ctx := context.Background()

	_, err := a.Consumption(ctx, testBudgetID, true)
	assert.ErrorIs(t, err, ErrLocked)

	_, err = a.Summary(ctx, testBudgetID)
	assert.ErrorIs(t, err, ErrLocked)

	_, err = a.CreateTransaction(ctx, testBudgetID, models.CreateTransactionRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrLocked)

	assert.ErrorIs(t, a.ChangePin(ctx, "5678"), ErrLocked)
}

func TestHTTPLedgerAdapter_CurrentPeriod(t *testing.T) {
	a := newTestAdapter(t, newFakeLedger(t))

	period, err := a.CurrentPeriod(context.Background(), time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, period.Month)
	assert.Equal(t, 2025, period.Year)
	assert.Equal(t, "2025-03-28", period.Label)

	period, err = a.CurrentPeriod(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, period.Label)
}

func TestHTTPLedgerAdapter_Consumption(t *testing.T) {
	fake := newFakeLedger(t)
	a := newTestAdapter(t, fake)
	require.NoError(t, a.Unlock(context.Background(), testPin))

	consumption, err := a.Consumption(context.Background(), testBudgetID, false)
	require.NoError(t, err)
	require.Len(t, consumption.Lines, 1)

	line := consumption.Lines[0]
	assert.Equal(t, "false", line.Name)
	assert.True(t, line.Consumed.Equal(decimal.RequireFromString("1574")))
	assert.True(t, line.Remaining.Equal(decimal.RequireFromString("-1166")))
	assert.True(t, line.OverConsumed)
	assert.Equal(t, fake.key(), fake.lastClientKey.Load())
}

func TestHTTPLedgerAdapter_Summary(t *testing.T) {
	a := newTestAdapter(t, newFakeLedger(t))
	require.NoError(t, a.Unlock(context.Background(), testPin))

	summary, err := a.Summary(context.Background(), testBudgetID)
	require.NoError(t, err)
	assert.Equal(t, testBudgetID, summary.BudgetID)
	assert.True(t, summary.Available.Equal(decimal.RequireFromString("950")))
}

func TestHTTPLedgerAdapter_ErrorMapping(t *testing.T) {
	a := newTestAdapter(t, newFakeLedger(t))
	require.NoError(t, a.Unlock(context.Background(), testPin))

	tests := []struct {
		budgetID string
		wantErr  error
		wantMsg  string
	}{
		{budgetID: "missing", wantErr: ErrNotFound, wantMsg: "budget not found"},
		{budgetID: "unset", wantErr: ErrEncryptionNotSetUp, wantMsg: "encryption is not set up"},
		{budgetID: "broken", wantErr: ErrInternalServerError, wantMsg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.budgetID, func(t *testing.T) {
			_, err := a.Summary(context.Background(), tt.budgetID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestHTTPLedgerAdapter_CreateTransaction(t *testing.T) {
	a := newTestAdapter(t, newFakeLedger(t))
	require.NoError(t, a.Unlock(context.Background(), testPin))

	tx, err := a.CreateTransaction(context.Background(), testBudgetID, models.CreateTransactionRequest{
		Name:   "Groceries",
		Kind:   models.KindExpense,
		Amount: decimal.NewNullDecimal(decimal.RequireFromString("42.50")),
	})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, "Groceries", tx.Name)
	assert.Equal(t, models.KindExpense, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("42.5")))
}

func TestHTTPLedgerAdapter_ChangePin(t *testing.T) {
	fake := newFakeLedger(t)
	a := newTestAdapter(t, fake)
	oldKey := fake.key()

	require.NoError(t, a.Unlock(context.Background(), testPin))
	require.NoError(t, a.ChangePin(context.Background(), "5678"))

	req, ok := fake.changePin.Load().(models.ChangePinRequest)
	require.True(t, ok)
	assert.Equal(t, oldKey, req.OldClientKey)
	assert.Equal(t, testIterations, req.KDFIterations)

	newSalt, err := hex.DecodeString(req.NewSalt)
	require.NoError(t, err)
	assert.Len(t, newSalt, crypto.SaltLength)

	wantKey := crypto.DeriveClientKey("5678", newSalt, testIterations, crypto.ClientKeyLength)
	assert.Equal(t, hex.EncodeToString(wantKey), req.NewClientKey)

	// the adapter now sends the new key
	_, err = a.Summary(context.Background(), testBudgetID)
	require.NoError(t, err)
	assert.Equal(t, req.NewClientKey, fake.lastClientKey.Load())
}
