// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

const masterKeyLength = 32

func validateApp(cfg *StructuredConfig) error {
	key, err := hex.DecodeString(strings.TrimSpace(cfg.App.EncryptionMasterKey))
	if err != nil || len(key) != masterKeyLength {
		return fmt.Errorf("%w: encryption master key must be %d hex encoded bytes", ErrInvalidAppConfigs, masterKeyLength)
	}

	if cfg.App.KDFIterations < 0 {
		return fmt.Errorf("%w: kdf iterations must not be negative", ErrInvalidAppConfigs)
	}

	return nil
}

func validateStorage(cfg *StructuredConfig) error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	return nil
}

func validateServer(cfg *StructuredConfig) error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.ServerAddress, "http://") && !strings.HasPrefix(cfg.ServerAddress, "https://") {
		return fmt.Errorf("%w: address must be an http(s) URL", ErrInvalidAdapterConfigs)
	}
	return nil
}

func lookupToken() string {
	return strings.TrimSpace(os.Getenv("LEDGER_TOKEN"))
}
