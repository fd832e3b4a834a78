// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the ledger
// server and the ledgerctl tool.
//
// Sources, later ones overriding non-zero fields of earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//
// Entry points are [GetServerConfig], [GetSeedConfig] and [GetClientConfig].
// Each validates only the groups its binary needs.
package config
