// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
)

type seedResult struct {
	UserID    string `json:"user_id"`
	Scanned   int    `json:"scanned"`
	Encrypted int    `json:"encrypted"`
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var pinFlag, saltHex, userID string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Encrypt plaintext amounts of a user",
		Long: `seed stores the user's key record with the given salt, derives the data
key from the PIN and encrypts every amount that is still a plain decimal
number. Running it twice changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pin, err := resolvePin(pinFlag)
			if err != nil {
				return err
			}

			log := opts.logger(cmd)
			ctx := log.WithContext(cmd.Context())

			cfg, err := config.GetSeedConfig(opts.configArgs())
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
			if err != nil {
				return fmt.Errorf("error connecting to database: %w", err)
			}
			defer db.Close()

			if err = db.Migrate(ctx); err != nil {
				return fmt.Errorf("error applying migrations: %w", err)
			}

			keyChain, err := crypto.NewKeyChainFromHex(cfg.App.EncryptionMasterKey)
			if err != nil {
				return fmt.Errorf("error loading encryption master key: %w", err)
			}

			storages := store.NewStorages(db, log)
			seeder := service.NewSeedService(storages.EncryptionKeyRepository, storages.AmountRewriter, keyChain, cfg.App, log)

			result, err := seeder.Seed(ctx, pin, saltHex, userID)
			if err != nil {
				return err
			}

			log.Info().Int("scanned", result.Scanned).Int("encrypted", result.Rewritten).Msg("seed finished")
			return printJSON(cmd.OutOrStdout(), seedResult{UserID: userID, Scanned: result.Scanned, Encrypted: result.Rewritten})
		},
	}

	cmd.Flags().StringVar(&pinFlag, "pin", "", "PIN of the user (or LEDGER_PIN)")
	cmd.Flags().StringVar(&saltHex, "salt", "", "hex encoded salt, at least 16 bytes")
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	_ = cmd.MarkFlagRequired("salt")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
