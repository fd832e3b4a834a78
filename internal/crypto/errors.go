// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrKeyDerivationFailed is a configuration-level failure: missing master
	// key, empty client key or user id. Never retried.
	ErrKeyDerivationFailed = errors.New("key derivation failed")

	// ErrIncorrectPin is returned when a derived key does not open the stored
	// key-check. The client should prompt for the PIN again.
	ErrIncorrectPin = errors.New("incorrect PIN")

	// ErrDecryptionFailed covers malformed envelopes, tag mismatches and
	// plaintexts that are not canonical decimal numbers.
	ErrDecryptionFailed = errors.New("decryption failed")

	ErrEncryptionFailed = errors.New("encryption failed")
)
