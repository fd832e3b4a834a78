// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultKDFIterations is the PBKDF2 cost applied to newly created key
	// records. Existing records keep the iteration count they were created with.
	DefaultKDFIterations = 600_000

	// ClientKeyLength is the size of the PIN-derived client key (AES-256).
	ClientKeyLength = 32

	// SaltLength is the size of the per-user salt.
	SaltLength = 16
)

// DeriveClientKey derives the client key from a PIN with PBKDF2-HMAC-SHA256.
//
// The function is deterministic and never fails: a wrong PIN yields a wrong
// key that is rejected later by the key-check. Iterations below 1 are
// raised to 1, a keyLength below 1 falls back to [ClientKeyLength].
func DeriveClientKey(pin string, salt []byte, iterations, keyLength int) []byte {
	if iterations < 1 {
		iterations = 1
	}
	if keyLength < 1 {
		keyLength = ClientKeyLength
	}

	return pbkdf2.Key([]byte(pin), salt, iterations, keyLength, sha256.New)
}

// GenerateSalt reads [SaltLength] random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
