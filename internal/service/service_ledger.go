// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/budget"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/period"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type ledgerService struct {
	budgets   store.BudgetRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewLedgerService(budgets store.BudgetRepository, logger *logger.Logger) LedgerService {
	return &ledgerService{
		budgets:   budgets,
		validator: validators.NewLedgerValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// BudgetConsumption implements [LedgerService]. Lines keep the order they
// were stored in.
func (s *ledgerService) BudgetConsumption(ctx context.Context, userID, budgetID string, includeIncome bool) (models.ConsumptionResponse, error) {
	dek, err := dataKey(ctx)
	if err != nil {
		return models.ConsumptionResponse{}, err
	}

	month, lines, err := s.loadMonth(ctx, dek, userID, budgetID)
	if err != nil {
		return models.ConsumptionResponse{}, err
	}

	calc := budget.NewCalculator(budget.WithIncomeInConsumption(includeIncome))
	consumptions := calc.ComputeAllConsumptions(month.Lines, month.Entries)

	response := models.ConsumptionResponse{
		BudgetID: budgetID,
		Lines:    make([]models.LineConsumption, 0, len(lines)),
	}
	for _, line := range lines {
		c, ok := consumptions[line.ID]
		if !ok {
			continue
		}
		response.Lines = append(response.Lines, models.LineConsumption{
			BudgetLineID:     line.ID,
			Name:             line.Name,
			Kind:             line.Kind,
			Amount:           line.Amount,
			Consumed:         c.Consumed,
			Remaining:        c.Remaining,
			TransactionCount: c.Count,
			OverConsumed:     c.IsOverConsumed(),
		})
	}

	return response, nil
}

// BudgetSummary implements [LedgerService]. The rollover of the target
// budget is chained through every earlier budget of the user.
func (s *ledgerService) BudgetSummary(ctx context.Context, userID, budgetID string) (models.SummaryResponse, error) {
	log := logger.FromContext(ctx)

	dek, err := dataKey(ctx)
	if err != nil {
		return models.SummaryResponse{}, err
	}

	budgets, err := s.budgets.ListBudgets(ctx, userID)
	if err != nil {
		return models.SummaryResponse{}, fmt.Errorf("error listing budgets: %w", err)
	}

	var target *models.Budget
	for i := range budgets {
		if budgets[i].ID == budgetID {
			target = &budgets[i]
			break
		}
	}
	if target == nil {
		return models.SummaryResponse{}, store.ErrBudgetNotFound
	}
	targetPeriod := periodOf(*target)

	chain := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if period.Compare(periodOf(b), targetPeriod) <= 0 {
			chain = append(chain, b)
		}
	}

	months := make([]budget.Month, len(chain))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range chain {
		g.Go(func() error {
			month, _, err := s.decryptMonth(gctx, dek, b)
			if err != nil {
				return err
			}
			months[i] = month
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return models.SummaryResponse{}, err
	}

	summaries := budget.NewCalculator().ChainRollovers(months)
	for _, ms := range summaries {
		if ms.BudgetID != budgetID {
			continue
		}
		log.Debug().
			Str("func", "ledgerService.BudgetSummary").
			Str("budget_id", budgetID).
			Int("chained_months", len(summaries)).
			Msg("summary computed")

		return models.SummaryResponse{
			BudgetID:      budgetID,
			Month:         ms.Period.Month,
			Year:          ms.Period.Year,
			Income:        ms.Income,
			Expenses:      ms.Expenses,
			Rollover:      ms.Rollover,
			Available:     ms.Available,
			EndingBalance: ms.EndingBalance,
		}, nil
	}

	return models.SummaryResponse{}, store.ErrBudgetNotFound
}

// CreateTransaction implements [LedgerService]. The amount is encrypted with
// the request key before it reaches the store. The store re-verifies that key
// against the key record while inserting; a PIN change that committed in
// between rejects the request with [crypto.ErrIncorrectPin].
func (s *ledgerService) CreateTransaction(ctx context.Context, userID, budgetID string, req models.CreateTransactionRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	dek, err := dataKey(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	if _, err = s.budgets.GetBudget(ctx, userID, budgetID); err != nil {
		return models.Transaction{}, err
	}

	if req.BudgetLineID != "" {
		if err = s.checkLineInBudget(ctx, budgetID, req.BudgetLineID); err != nil {
			return models.Transaction{}, err
		}
	}

	date := req.TransactionDate
	if date.IsZero() {
		date = s.now()
	}

	envelope, err := crypto.EncryptAmount(dek.Bytes(), req.Amount.Decimal)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		ID:              s.ids.Generate(),
		BudgetID:        budgetID,
		BudgetLineID:    req.BudgetLineID,
		Name:            strings.TrimSpace(req.Name),
		Kind:            req.Kind,
		Amount:          req.Amount.Decimal,
		TransactionDate: date,
		CreatedAt:       s.now(),
		EncryptedAmount: &envelope,
	}

	verify := func(keyCheck string) bool {
		return crypto.VerifyKey(dek.Bytes(), keyCheck)
	}
	err = s.budgets.CreateTransaction(ctx, userID, transaction, verify)
	if errors.Is(err, store.ErrEncryptionKeyChanged) {
		log.Warn().
			Str("func", "ledgerService.CreateTransaction").
			Str("budget_id", budgetID).
			Msg("request key no longer matches the stored key")
		return models.Transaction{}, fmt.Errorf("%w: %w", crypto.ErrIncorrectPin, err)
	}
	if errors.Is(err, store.ErrEncryptionKeyNotFound) {
		return models.Transaction{}, ErrEncryptionNotSetUp
	}
	if err != nil {
		return models.Transaction{}, err
	}

	log.Info().
		Str("func", "ledgerService.CreateTransaction").
		Str("budget_id", budgetID).
		Str("transaction_id", transaction.ID).
		Msg("transaction created")
	return transaction, nil
}

// CurrentPeriod implements [LedgerService].
func (s *ledgerService) CurrentPeriod(ctx context.Context, userID string, now time.Time) (models.PeriodResponse, error) {
	payDay, err := s.budgets.GetPayDayOfMonth(ctx, userID)
	if err != nil {
		return models.PeriodResponse{}, fmt.Errorf("error getting pay day: %w", err)
	}

	if now.IsZero() {
		now = s.now()
	}

	p := period.Resolve(now, payDay)
	start, end := period.Bounds(p, payDay)

	return models.PeriodResponse{
		Month: p.Month,
		Year:  p.Year,
		Label: p.String(),
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
	}, nil
}

func (s *ledgerService) checkLineInBudget(ctx context.Context, budgetID, lineID string) error {
	if budget.IsRolloverLineID(lineID) {
		return fmt.Errorf("%w: rollover lines do not take transactions", ErrBudgetLineNotInBudget)
	}

	lines, err := s.budgets.GetBudgetLines(ctx, budgetID)
	if err != nil {
		return fmt.Errorf("error getting budget lines: %w", err)
	}
	for _, line := range lines {
		if line.ID == lineID {
			return nil
		}
	}
	return ErrBudgetLineNotInBudget
}

// loadMonth reads one budget of userID and decrypts its content.
func (s *ledgerService) loadMonth(ctx context.Context, dek *crypto.Secret, userID, budgetID string) (budget.Month, []models.BudgetLine, error) {
	b, err := s.budgets.GetBudget(ctx, userID, budgetID)
	if err != nil {
		return budget.Month{}, nil, err
	}
	return s.decryptMonth(ctx, dek, b)
}

// decryptMonth loads lines and transactions of b concurrently and opens
// every amount. A single undecryptable amount fails the whole month.
func (s *ledgerService) decryptMonth(ctx context.Context, dek *crypto.Secret, b models.Budget) (budget.Month, []models.BudgetLine, error) {
	var (
		lines        []models.BudgetLine
		transactions []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = s.budgets.GetBudgetLines(gctx, b.ID)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.budgets.GetTransactions(gctx, b.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return budget.Month{}, nil, fmt.Errorf("error loading budget %s: %w", b.ID, err)
	}

	month := budget.Month{
		BudgetID: b.ID,
		Period:   periodOf(b),
		Lines:    make([]budget.Line, 0, len(lines)),
		Entries:  make([]budget.Entry, 0, len(transactions)),
	}

	for i := range lines {
		amount, err := openAmount(ctx, dek, models.BudgetLine{}.TableName(), lines[i].ID, lines[i].EncryptedAmount)
		if err != nil {
			return budget.Month{}, nil, err
		}
		lines[i].Amount = amount
		month.Lines = append(month.Lines, lines[i])
	}

	for i := range transactions {
		amount, err := openAmount(ctx, dek, models.Transaction{}.TableName(), transactions[i].ID, transactions[i].EncryptedAmount)
		if err != nil {
			return budget.Month{}, nil, err
		}
		transactions[i].Amount = amount
		month.Entries = append(month.Entries, transactions[i])
	}

	return month, lines, nil
}

// openAmount decrypts one stored amount. Plain values left by an unfinished
// migration are rejected like any other malformed envelope.
func openAmount(ctx context.Context, dek *crypto.Secret, table, rowID string, envelope *string) (decimal.Decimal, error) {
	if envelope == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %s", ErrAmountMissing, table, rowID)
	}

	amount, err := crypto.DecryptAmount(dek.Bytes(), *envelope)
	if err != nil {
		logger.FromContext(ctx).Error().
			Str("func", "openAmount").
			Str("table", table).
			Str("row_id", rowID).
			Bool("plain_value", crypto.IsPlainAmount(*envelope)).
			Msg("stored amount could not be decrypted")
		return decimal.Decimal{}, fmt.Errorf("%s %s: %w", table, rowID, err)
	}
	return amount, nil
}

func dataKey(ctx context.Context) (*crypto.Secret, error) {
	dek, ok := utils.GetDataKeyFromContext(ctx)
	if !ok {
		return nil, ErrMissingDataKey
	}
	return dek, nil
}

func periodOf(b models.Budget) period.Period {
	return period.Period{Month: b.Month, Year: b.Year}
}
