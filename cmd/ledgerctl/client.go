// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/models"
)

func (o *rootOptions) newAdapter(cmd *cobra.Command) (adapter.LedgerAdapter, error) {
	cfg, err := config.GetClientConfig(o.configArgs())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	return adapter.NewHTTPLedgerAdapter(cfg, o.logger(cmd))
}

// withUnlocked runs fn with an adapter unlocked by pin and locks it again
// afterwards.
func (o *rootOptions) withUnlocked(cmd *cobra.Command, pinFlag string, fn func(ctx context.Context, a adapter.LedgerAdapter) error) error {
	pin, err := resolvePin(pinFlag)
	if err != nil {
		return err
	}

	a, err := o.newAdapter(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err = a.Unlock(ctx, pin); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}
	defer a.Lock()

	return fn(ctx, a)
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "server-version",
		Short: "Print the version reported by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.newAdapter(cmd)
			if err != nil {
				return err
			}

			version, err := a.Version(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

func newPeriodCmd(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Print the budget period containing a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var at time.Time
			if date != "" {
				parsed, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
				at = parsed
			}

			a, err := opts.newAdapter(cmd)
			if err != nil {
				return err
			}

			period, err := a.CurrentPeriod(cmd.Context(), at)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), period)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD, today when empty")
	return cmd
}

func newConsumptionCmd(opts *rootOptions) *cobra.Command {
	var (
		pin           string
		budgetID      string
		includeIncome bool
	)

	cmd := &cobra.Command{
		Use:   "consumption",
		Short: "Print per-line consumption of a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withUnlocked(cmd, pin, func(ctx context.Context, a adapter.LedgerAdapter) error {
				consumption, err := a.Consumption(ctx, budgetID, includeIncome)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), consumption)
			})
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "PIN (or LEDGER_PIN)")
	cmd.Flags().StringVar(&budgetID, "budget", "", "budget id")
	cmd.Flags().BoolVar(&includeIncome, "include-income", true, "count income transactions as consumption")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var pin, budgetID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the period totals of a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withUnlocked(cmd, pin, func(ctx context.Context, a adapter.LedgerAdapter) error {
				summary, err := a.Summary(ctx, budgetID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "PIN (or LEDGER_PIN)")
	cmd.Flags().StringVar(&budgetID, "budget", "", "budget id")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newAddTransactionCmd(opts *rootOptions) *cobra.Command {
	var (
		pin      string
		budgetID string
		lineID   string
		name     string
		kind     string
		amount   string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add-transaction",
		Short: "Record a transaction in a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("amount must be a decimal number: %w", err)
			}

			req := models.CreateTransactionRequest{
				BudgetLineID: lineID,
				Name:         name,
				Kind:         models.Kind(kind),
				Amount:       decimal.NewNullDecimal(value),
			}
			if date != "" {
				req.TransactionDate, err = time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
			}

			return opts.withUnlocked(cmd, pin, func(ctx context.Context, a adapter.LedgerAdapter) error {
				tx, err := a.CreateTransaction(ctx, budgetID, req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), tx)
			})
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "PIN (or LEDGER_PIN)")
	cmd.Flags().StringVar(&budgetID, "budget", "", "budget id")
	cmd.Flags().StringVar(&lineID, "line", "", "budget line id, empty for a free transaction")
	cmd.Flags().StringVar(&name, "name", "", "transaction name")
	cmd.Flags().StringVar(&kind, "kind", string(models.KindExpense), "income, expense or saving")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, e.g. 42.50")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD, today when empty")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newChangePinCmd(opts *rootOptions) *cobra.Command {
	var pin, newPin string

	cmd := &cobra.Command{
		Use:   "change-pin",
		Short: "Replace the PIN and re-encrypt every amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if newPin == "" {
				return fmt.Errorf("--new-pin is required")
			}

			return opts.withUnlocked(cmd, pin, func(ctx context.Context, a adapter.LedgerAdapter) error {
				if err := a.ChangePin(ctx, newPin); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "pin changed")
				return err
			})
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "current PIN (or LEDGER_PIN)")
	cmd.Flags().StringVar(&newPin, "new-pin", "", "new PIN")

	return cmd
}
