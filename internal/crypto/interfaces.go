// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the key protocol and the amount cipher of the
// ledger.
//
// Key flow:
//
//	clientKey = PBKDF2-SHA256(PIN, salt, iterations)        (client side)
//	DEK       = HKDF-SHA256(clientKey ‖ masterKey, salt,
//	                        "pulpe-dek-" + userID)          (server, per request)
//	envelope  = base64(IV ‖ TAG ‖ AES-256-GCM(amount))
//
// The master key stays inside the server process in a memguard enclave.
// Client keys and DEKs only exist for the duration of a request.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain owns the server master key and turns client keys into
// per-user data-encryption keys.
type KeyChain interface {
	// GenerateSalt returns a new random per-user salt.
	GenerateSalt() ([]byte, error)

	// DeriveDataKey derives the DEK for userID. The caller must Destroy the
	// returned secret when the request ends.
	DeriveDataKey(clientKey, salt []byte, userID string) (*Secret, error)
}
