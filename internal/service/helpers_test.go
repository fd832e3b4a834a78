// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const (
	testUserID        = "0192d4e0-7c1a-7b3e-9f00-4a1b2c3d4e5f"
	testMasterKeyHex  = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testKDFIterations = 1000
)

var (
	testSalt      = bytes.Repeat([]byte{0x5a}, crypto.SaltLength)
	testClientKey = bytes.Repeat([]byte{0x11}, crypto.ClientKeyLength)
)

func newTestKeyChain(t *testing.T) crypto.KeyChain {
	t.Helper()

	kc, err := crypto.NewKeyChainFromHex(testMasterKeyHex)
	require.NoError(t, err)
	return kc
}

// deriveTestDEK returns a plain copy of the DEK for assertions.
func deriveTestDEK(t *testing.T, kc crypto.KeyChain, clientKey, salt []byte) []byte {
	t.Helper()

	secret, err := kc.DeriveDataKey(clientKey, salt, testUserID)
	require.NoError(t, err)
	defer secret.Destroy()

	return bytes.Clone(secret.Bytes())
}

func keyRecordFor(t *testing.T, dek, salt []byte) models.EncryptionKey {
	t.Helper()

	keyCheck, err := crypto.CreateKeyCheck(dek)
	require.NoError(t, err)

	return models.EncryptionKey{
		UserID:        testUserID,
		Salt:          salt,
		KDFIterations: testKDFIterations,
		KeyCheck:      &keyCheck,
	}
}

func seal(t *testing.T, dek []byte, amount string) *string {
	t.Helper()

	envelope, err := crypto.EncryptAmount(dek, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return &envelope
}

func open(t *testing.T, dek []byte, envelope string) decimal.Decimal {
	t.Helper()

	amount, err := crypto.DecryptAmount(dek, envelope)
	require.NoError(t, err)
	return amount
}

// contextWithDEK puts a guarded copy of dek into a request context.
func contextWithDEK(t *testing.T, dek []byte) context.Context {
	t.Helper()

	secret := crypto.NewSecret(bytes.Clone(dek))
	t.Cleanup(secret.Destroy)
	return utils.WithDataKey(context.Background(), secret)
}
