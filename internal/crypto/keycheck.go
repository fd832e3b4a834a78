// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/shopspring/decimal"

// CreateKeyCheck encrypts the canonical value 0 with dek. The result is
// stored once per user and lets a freshly derived key be verified without
// touching real data.
func CreateKeyCheck(dek []byte) (string, error) {
	return EncryptAmount(dek, decimal.Zero)
}

// VerifyKey reports whether dek opens keyCheck and yields 0.
// It never panics and never returns an error: any failure is false.
func VerifyKey(dek []byte, keyCheck string) bool {
	if keyCheck == "" {
		return false
	}

	value, err := DecryptAmount(dek, keyCheck)
	if err != nil {
		return false
	}

	return value.IsZero()
}
