// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// expectUnlock lets withClientKey pass with a fresh DEK.
func expectUnlock(ts testServices) {
	ts.encryption.EXPECT().DeriveRequestKey(gomock.Any(), testUserID, testClientKey).
		DoAndReturn(func(_ context.Context, _ string, _ []byte) (*crypto.Secret, error) {
			return testDEK(), nil
		})
}

func TestCurrentPeriod(t *testing.T) {
	h, ts := newTestHandler(t)

	want := models.PeriodResponse{Month: 12, Year: 2024, Label: "2024-12", Start: "2024-12-27", End: "2025-01-26"}
	ts.ledger.EXPECT().CurrentPeriod(gomock.Any(), testUserID, time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC)).
		Return(want, nil)

	rr := serve(t, h, request{method: http.MethodGet, target: "/api/v1/periods/current?date=2025-01-26", auth: true})
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.PeriodResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestCurrentPeriod_InvalidDate(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(t, h, request{method: http.MethodGet, target: "/api/v1/periods/current?date=26.01.2025", auth: true})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBudgetConsumption(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		includeIncome bool
	}{
		{name: "default includes income", query: "", includeIncome: true},
		{name: "explicit false", query: "?includeIncome=false", includeIncome: false},
		{name: "explicit true", query: "?includeIncome=1", includeIncome: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			expectUnlock(ts)

			resp := models.ConsumptionResponse{
				BudgetID: "b-1",
				Lines: []models.LineConsumption{{
					BudgetLineID:     "l-1",
					Kind:             models.KindExpense,
					Amount:           decimal.NewFromInt(408),
					Consumed:         decimal.NewFromInt(1574),
					Remaining:        decimal.NewFromInt(-1166),
					TransactionCount: 2,
					OverConsumed:     true,
				}},
			}
			ts.ledger.EXPECT().BudgetConsumption(gomock.Any(), testUserID, "b-1", tt.includeIncome).Return(resp, nil)

			rr := serve(t, h, request{
				method:    http.MethodGet,
				target:    "/api/v1/budgets/b-1/consumption" + tt.query,
				auth:      true,
				clientKey: testClientKeyHex,
			})
			require.Equal(t, http.StatusOK, rr.Code)

			var got models.ConsumptionResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.Len(t, got.Lines, 1)
			assert.True(t, got.Lines[0].Remaining.Equal(decimal.NewFromInt(-1166)))
			assert.True(t, got.Lines[0].OverConsumed)
		})
	}
}

func TestBudgetConsumption_InvalidFlag(t *testing.T) {
	h, ts := newTestHandler(t)
	expectUnlock(ts)

	rr := serve(t, h, request{
		method:    http.MethodGet,
		target:    "/api/v1/budgets/b-1/consumption?includeIncome=maybe",
		auth:      true,
		clientKey: testClientKeyHex,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBudgetSummary_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: store.ErrBudgetNotFound, wantStatus: http.StatusNotFound},
		{name: "tampered amount", err: crypto.ErrDecryptionFailed, wantStatus: http.StatusInternalServerError},
		{name: "null amount", err: service.ErrAmountMissing, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			expectUnlock(ts)
			ts.ledger.EXPECT().BudgetSummary(gomock.Any(), testUserID, "b-9").Return(models.SummaryResponse{}, tt.err)

			rr := serve(t, h, request{
				method:    http.MethodGet,
				target:    "/api/v1/budgets/b-9/summary",
				auth:      true,
				clientKey: testClientKeyHex,
			})
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateTransaction(t *testing.T) {
	h, ts := newTestHandler(t)
	expectUnlock(ts)

	created := models.Transaction{
		ID:           "0192d4e0-0000-7000-8000-000000000001",
		BudgetID:     "b-1",
		BudgetLineID: "l-1",
		Name:         "Coffee",
		Kind:         models.KindExpense,
		Amount:       decimal.RequireFromString("4.2"),
	}
	ts.ledger.EXPECT().CreateTransaction(gomock.Any(), testUserID, "b-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, req models.CreateTransactionRequest) (models.Transaction, error) {
			assert.Equal(t, "l-1", req.BudgetLineID)
			assert.True(t, req.Amount.Valid && req.Amount.Decimal.Equal(decimal.RequireFromString("4.2")))
			return created, nil
		})

	rr := serve(t, h, request{
		method:    http.MethodPost,
		target:    "/api/v1/budgets/b-1/transactions",
		body:      `{"budget_line_id":"l-1","name":"Coffee","kind":"expense","amount":"4.20"}`,
		auth:      true,
		clientKey: testClientKeyHex,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Transaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.NotContains(t, rr.Body.String(), "encrypted")
}

func TestCreateTransaction_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "broken json", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "line of another budget", body: `{"budget_line_id":"x","name":"a","kind":"expense","amount":"1"}`, serviceErr: service.ErrBudgetLineNotInBudget, wantStatus: http.StatusBadRequest},
		{name: "dangling reference", body: `{"name":"a","kind":"expense","amount":"1"}`, serviceErr: store.ErrInvalidReference, wantStatus: http.StatusBadRequest},
		{name: "budget of another user", body: `{"name":"a","kind":"expense","amount":"1"}`, serviceErr: store.ErrBudgetNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "pin changed during request",
			body:       `{"name":"a","kind":"expense","amount":"1"}`,
			serviceErr: fmt.Errorf("%w: %w", crypto.ErrIncorrectPin, store.ErrEncryptionKeyChanged),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			expectUnlock(ts)
			if tt.serviceErr != nil {
				ts.ledger.EXPECT().CreateTransaction(gomock.Any(), testUserID, "b-1", gomock.Any()).
					Return(models.Transaction{}, tt.serviceErr)
			}

			rr := serve(t, h, request{
				method:    http.MethodPost,
				target:    "/api/v1/budgets/b-1/transactions",
				body:      tt.body,
				auth:      true,
				clientKey: testClientKeyHex,
			})
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateTransaction_MissingAmount(t *testing.T) {
	h, ts := newTestHandler(t)
	expectUnlock(ts)

	ts.ledger.EXPECT().CreateTransaction(gomock.Any(), testUserID, "b-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, req models.CreateTransactionRequest) (models.Transaction, error) {
			assert.False(t, req.Amount.Valid)
			return models.Transaction{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyAmount)
		})

	rr := serve(t, h, request{
		method:    http.MethodPost,
		target:    "/api/v1/budgets/b-1/transactions",
		body:      `{"name":"Coffee","kind":"expense"}`,
		auth:      true,
		clientKey: testClientKeyHex,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, service.ErrInvalidDataProvided.Error(), errorMessage(t, rr))
}
