// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/mock"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
)

var testNow = time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC)

func newTestLedgerService(t *testing.T) (*ledgerService, *mock.MockBudgetRepository, []byte) {
	t.Helper()

	ctrl := gomock.NewController(t)
	budgets := mock.NewMockBudgetRepository(ctrl)

	svc := NewLedgerService(budgets, logger.Nop()).(*ledgerService)
	svc.now = func() time.Time { return testNow }

	dek := deriveTestDEK(t, newTestKeyChain(t), testClientKey, testSalt)
	return svc, budgets, dek
}

func TestBudgetConsumption(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	b := models.Budget{ID: "b-1", UserID: testUserID, Month: 1, Year: 2025}
	lines := []models.BudgetLine{
		{ID: "l-groceries", BudgetID: "b-1", Name: "Groceries", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "408")},
		{ID: "l-salary", BudgetID: "b-1", Name: "Salary", Kind: models.KindIncome, EncryptedAmount: seal(t, dek, "5000")},
	}
	transactions := []models.Transaction{
		{ID: "t-1", BudgetID: "b-1", BudgetLineID: "l-groceries", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "800")},
		{ID: "t-2", BudgetID: "b-1", BudgetLineID: "l-groceries", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "774")},
		{ID: "t-3", BudgetID: "b-1", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "12.30")},
	}

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(b, nil)
	budgets.EXPECT().GetBudgetLines(gomock.Any(), "b-1").Return(lines, nil)
	budgets.EXPECT().GetTransactions(gomock.Any(), "b-1").Return(transactions, nil)

	got, err := svc.BudgetConsumption(ctx, testUserID, "b-1", true)
	require.NoError(t, err)

	require.Len(t, got.Lines, 2)
	groceries := got.Lines[0]
	assert.Equal(t, "l-groceries", groceries.BudgetLineID)
	assert.True(t, decimal.NewFromInt(408).Equal(groceries.Amount))
	assert.True(t, decimal.NewFromInt(1574).Equal(groceries.Consumed))
	assert.True(t, decimal.NewFromInt(-1166).Equal(groceries.Remaining))
	assert.Equal(t, 2, groceries.TransactionCount)
	assert.True(t, groceries.OverConsumed)

	salary := got.Lines[1]
	assert.Equal(t, "l-salary", salary.BudgetLineID)
	assert.True(t, salary.Consumed.IsZero())
	assert.Equal(t, 0, salary.TransactionCount)
	assert.False(t, salary.OverConsumed)
}

func TestBudgetConsumption_ExcludingIncome(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	lines := []models.BudgetLine{
		{ID: "l-1", BudgetID: "b-1", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "100")},
	}
	transactions := []models.Transaction{
		{ID: "t-1", BudgetID: "b-1", BudgetLineID: "l-1", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "-30")},
		{ID: "t-2", BudgetID: "b-1", BudgetLineID: "l-1", Kind: models.KindIncome, EncryptedAmount: seal(t, dek, "20")},
	}

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1", Month: 3, Year: 2025}, nil)
	budgets.EXPECT().GetBudgetLines(gomock.Any(), "b-1").Return(lines, nil)
	budgets.EXPECT().GetTransactions(gomock.Any(), "b-1").Return(transactions, nil)

	got, err := svc.BudgetConsumption(ctx, testUserID, "b-1", false)
	require.NoError(t, err)

	require.Len(t, got.Lines, 1)
	assert.True(t, decimal.NewFromInt(30).Equal(got.Lines[0].Consumed))
	assert.True(t, decimal.NewFromInt(70).Equal(got.Lines[0].Remaining))
	assert.Equal(t, 1, got.Lines[0].TransactionCount)
}

func TestBudgetConsumption_MissingDataKey(t *testing.T) {
	svc, _, _ := newTestLedgerService(t)

	_, err := svc.BudgetConsumption(context.Background(), testUserID, "b-1", true)
	assert.ErrorIs(t, err, ErrMissingDataKey)
}

func TestBudgetConsumption_PlainStoredAmountFails(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	plain := "250.00"
	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1", Month: 1, Year: 2025}, nil)
	budgets.EXPECT().GetBudgetLines(gomock.Any(), "b-1").Return([]models.BudgetLine{
		{ID: "l-1", BudgetID: "b-1", Kind: models.KindExpense, EncryptedAmount: &plain},
	}, nil)
	budgets.EXPECT().GetTransactions(gomock.Any(), "b-1").Return(nil, nil)

	_, err := svc.BudgetConsumption(ctx, testUserID, "b-1", true)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestBudgetConsumption_NullAmountFails(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1", Month: 1, Year: 2025}, nil)
	budgets.EXPECT().GetBudgetLines(gomock.Any(), "b-1").Return(nil, nil)
	budgets.EXPECT().GetTransactions(gomock.Any(), "b-1").Return([]models.Transaction{
		{ID: "t-1", BudgetID: "b-1", Kind: models.KindExpense},
	}, nil)

	_, err := svc.BudgetConsumption(ctx, testUserID, "b-1", true)
	assert.ErrorIs(t, err, ErrAmountMissing)
}

func TestBudgetConsumption_BudgetNotFound(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-x").Return(models.Budget{}, store.ErrBudgetNotFound)

	_, err := svc.BudgetConsumption(ctx, testUserID, "b-x", true)
	assert.ErrorIs(t, err, store.ErrBudgetNotFound)
}

func TestBudgetSummary_ChainsRolloverFromEarlierBudgets(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().ListBudgets(ctx, testUserID).Return([]models.Budget{
		{ID: "b-mar", Month: 3, Year: 2025},
		{ID: "b-jan", Month: 1, Year: 2025},
		{ID: "b-feb", Month: 2, Year: 2025},
	}, nil)

	budgets.EXPECT().GetBudgetLines(gomock.Any(), "b-jan").Return([]models.BudgetLine{
		{ID: "jan-income", Kind: models.KindIncome, EncryptedAmount: seal(t, dek, "1000")},
		{ID: "jan-rent", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "600")},
	}, nil)
	budgets.EXPECT().GetTransactions(gomock.Any(), "b-jan").Return(nil, nil)

	budgets.EXPECT().GetBudgetLines(gomock.Any(), "b-feb").Return([]models.BudgetLine{
		{ID: "feb-income", Kind: models.KindIncome, EncryptedAmount: seal(t, dek, "500")},
		{ID: "feb-food", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "300")},
	}, nil)
	budgets.EXPECT().GetTransactions(gomock.Any(), "b-feb").Return([]models.Transaction{
		{ID: "t-1", BudgetLineID: "feb-food", Kind: models.KindExpense, EncryptedAmount: seal(t, dek, "350")},
		{ID: "t-2", Kind: models.KindIncome, EncryptedAmount: seal(t, dek, "50")},
	}, nil)

	got, err := svc.BudgetSummary(ctx, testUserID, "b-feb")
	require.NoError(t, err)

	assert.Equal(t, "b-feb", got.BudgetID)
	assert.Equal(t, 2, got.Month)
	assert.Equal(t, 2025, got.Year)
	assert.True(t, decimal.NewFromInt(550).Equal(got.Income), "income %s", got.Income)
	assert.True(t, decimal.NewFromInt(350).Equal(got.Expenses), "expenses %s", got.Expenses)
	assert.True(t, decimal.NewFromInt(400).Equal(got.Rollover), "rollover %s", got.Rollover)
	assert.True(t, decimal.NewFromInt(950).Equal(got.Available), "available %s", got.Available)
	assert.True(t, decimal.NewFromInt(600).Equal(got.EndingBalance), "ending %s", got.EndingBalance)
}

func TestBudgetSummary_UnknownBudget(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().ListBudgets(ctx, testUserID).Return([]models.Budget{{ID: "b-jan", Month: 1, Year: 2025}}, nil)

	_, err := svc.BudgetSummary(ctx, testUserID, "b-other")
	assert.ErrorIs(t, err, store.ErrBudgetNotFound)
}

func TestCreateTransaction_EncryptsAmount(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	req := models.CreateTransactionRequest{
		BudgetLineID: "l-1",
		Name:         "  Coffee ",
		Kind:         models.KindExpense,
		Amount:       decimal.NewNullDecimal(decimal.RequireFromString("4.20")),
	}

	var saved models.Transaction
	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1"}, nil)
	budgets.EXPECT().GetBudgetLines(ctx, "b-1").Return([]models.BudgetLine{{ID: "l-1"}}, nil)
	budgets.EXPECT().CreateTransaction(ctx, testUserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, tx models.Transaction, check store.KeyCheckFunc) error {
			assert.True(t, check(*keyRecordFor(t, dek, testSalt).KeyCheck))
			saved = tx
			return nil
		})

	got, err := svc.CreateTransaction(ctx, testUserID, "b-1", req)
	require.NoError(t, err)

	assert.NoError(t, uuid.Validate(got.ID))
	assert.Equal(t, "Coffee", got.Name)
	assert.Equal(t, testNow, got.TransactionDate)
	assert.Equal(t, "b-1", saved.BudgetID)
	assert.Equal(t, "l-1", saved.BudgetLineID)

	require.NotNil(t, saved.EncryptedAmount)
	assert.NotContains(t, *saved.EncryptedAmount, "4.2")
	assert.Equal(t, "4.2", open(t, dek, *saved.EncryptedAmount).String())
}

func TestCreateTransaction_FreeTransactionSkipsLineCheck(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	date := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1"}, nil)
	budgets.EXPECT().CreateTransaction(ctx, testUserID, gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateTransaction(ctx, testUserID, "b-1", models.CreateTransactionRequest{
		Name:            "Bonus",
		Kind:            models.KindIncome,
		Amount:          decimal.NewNullDecimal(decimal.NewFromInt(200)),
		TransactionDate: date,
	})
	require.NoError(t, err)
	assert.Empty(t, got.BudgetLineID)
	assert.Equal(t, date, got.TransactionDate)
}

func TestCreateTransaction_KeyReplacedByPinChange(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	newDEK := deriveTestDEK(t, newTestKeyChain(t), bytes.Repeat([]byte{0x22}, crypto.ClientKeyLength), testSalt)
	replaced := keyRecordFor(t, newDEK, testSalt)

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1"}, nil)
	budgets.EXPECT().CreateTransaction(ctx, testUserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ models.Transaction, check store.KeyCheckFunc) error {
			if !check(*replaced.KeyCheck) {
				return store.ErrEncryptionKeyChanged
			}
			return nil
		})

	_, err := svc.CreateTransaction(ctx, testUserID, "b-1", models.CreateTransactionRequest{
		Name:   "Coffee",
		Kind:   models.KindExpense,
		Amount: decimal.NewNullDecimal(decimal.NewFromInt(3)),
	})
	assert.ErrorIs(t, err, crypto.ErrIncorrectPin)
	assert.ErrorIs(t, err, store.ErrEncryptionKeyChanged)
}

func TestCreateTransaction_KeyRecordMissing(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1"}, nil)
	budgets.EXPECT().CreateTransaction(ctx, testUserID, gomock.Any(), gomock.Any()).Return(store.ErrEncryptionKeyNotFound)

	_, err := svc.CreateTransaction(ctx, testUserID, "b-1", models.CreateTransactionRequest{
		Name:   "Coffee",
		Kind:   models.KindExpense,
		Amount: decimal.NewNullDecimal(decimal.NewFromInt(3)),
	})
	assert.ErrorIs(t, err, ErrEncryptionNotSetUp)
}

func TestCreateTransaction_LineNotInBudget(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1"}, nil)
	budgets.EXPECT().GetBudgetLines(ctx, "b-1").Return([]models.BudgetLine{{ID: "l-1"}}, nil)

	_, err := svc.CreateTransaction(ctx, testUserID, "b-1", models.CreateTransactionRequest{
		BudgetLineID: "l-foreign",
		Name:         "Coffee",
		Kind:         models.KindExpense,
		Amount:       decimal.NewNullDecimal(decimal.NewFromInt(3)),
	})
	assert.ErrorIs(t, err, ErrBudgetLineNotInBudget)
}

func TestCreateTransaction_RolloverLineRejected(t *testing.T) {
	svc, budgets, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	budgets.EXPECT().GetBudget(ctx, testUserID, "b-1").Return(models.Budget{ID: "b-1"}, nil)

	_, err := svc.CreateTransaction(ctx, testUserID, "b-1", models.CreateTransactionRequest{
		BudgetLineID: "rollover-b-1",
		Name:         "Coffee",
		Kind:         models.KindExpense,
		Amount:       decimal.NewNullDecimal(decimal.NewFromInt(3)),
	})
	assert.ErrorIs(t, err, ErrBudgetLineNotInBudget)
}

func TestCreateTransaction_Validation(t *testing.T) {
	svc, _, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	tests := []struct {
		name string
		req  models.CreateTransactionRequest
	}{
		{name: "empty name", req: models.CreateTransactionRequest{Name: " ", Kind: models.KindExpense}},
		{name: "unknown kind", req: models.CreateTransactionRequest{Name: "x", Kind: "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(ctx, testUserID, "b-1", tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCreateTransaction_MissingAmountNotStored(t *testing.T) {
	svc, _, dek := newTestLedgerService(t)
	ctx := contextWithDEK(t, dek)

	for _, body := range []string{
		`{"name":"Coffee","kind":"expense"}`,
		`{"name":"Coffee","kind":"expense","amount":null}`,
	} {
		t.Run(body, func(t *testing.T) {
			var req models.CreateTransactionRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))

			_, err := svc.CreateTransaction(ctx, testUserID, "b-1", req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, validators.ErrEmptyAmount)
		})
	}
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		name   string
		payDay int
		now    time.Time
		want   models.PeriodResponse
	}{
		{
			name:   "before pay day",
			payDay: 27,
			now:    time.Date(2025, time.January, 26, 12, 0, 0, 0, time.UTC),
			want:   models.PeriodResponse{Month: 12, Year: 2024, Label: "2024-12", Start: "2024-12-27", End: "2025-01-26"},
		},
		{
			name:   "on pay day",
			payDay: 27,
			now:    time.Date(2025, time.January, 27, 0, 0, 0, 0, time.UTC),
			want:   models.PeriodResponse{Month: 1, Year: 2025, Label: "2025-01", Start: "2025-01-27", End: "2025-02-26"},
		},
		{
			name:   "calendar month when unset",
			payDay: 0,
			now:    time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
			want:   models.PeriodResponse{Month: 2, Year: 2025, Label: "2025-02", Start: "2025-02-01", End: "2025-02-28"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, budgets, _ := newTestLedgerService(t)
			ctx := context.Background()

			budgets.EXPECT().GetPayDayOfMonth(ctx, testUserID).Return(tt.payDay, nil)

			got, err := svc.CurrentPeriod(ctx, testUserID, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
