// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command ledgerctl is the operator and client tool of the budget ledger.
//
// `ledgerctl seed` talks to the database directly and encrypts plaintext
// amounts left by an import. `ledgerctl token` mints a development JWT. The
// remaining commands call a running server through the client SDK.
package main

import (
	"os"

	"github.com/awnumar/memguard"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()

	_ = godotenv.Load()

	err := newRootCmd().Execute()
	memguard.Purge()
	if err != nil {
		os.Exit(1)
	}
}
