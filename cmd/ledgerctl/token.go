// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

const defaultTokenDuration = 24 * time.Hour

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID   string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a development bearer token",
		Long: `token signs an HS256 JWT for the user with APP_TOKEN_SIGN_KEY and
APP_TOKEN_ISSUER. Export it as LEDGER_TOKEN for the client commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := uuid.Validate(userID); err != nil {
				return fmt.Errorf("user id must be a UUID: %w", err)
			}

			cfg, err := config.GetStructuredConfig(opts.configArgs())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			if duration <= 0 {
				duration = cfg.App.TokenDuration
			}
			if duration <= 0 {
				duration = defaultTokenDuration
			}

			token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, userID, duration, cfg.App.TokenSignKey)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime, APP_TOKEN_DURATION or 24h when unset")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
