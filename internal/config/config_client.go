// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the part of [StructuredConfig] ledgerctl needs to call the
// server.
type ClientConfig struct {
	// ServerAddress is the base URL of the ledger server.
	ServerAddress string
	// RequestTimeout is the timeout of one outbound request.
	RequestTimeout time.Duration
	// Token is the bearer token sent with every request.
	Token string
}

// GetClientConfig builds the client view of the merged configuration. Token
// is taken from LEDGER_TOKEN when set.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          lookupToken(),
	}

	return clientCfg, clientCfg.validate()
}
