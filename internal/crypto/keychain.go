// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/awnumar/memguard"
)

// MasterKeyLength is the required size of the server master key.
const MasterKeyLength = 32

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	masterKey *memguard.Enclave
}

// NewKeyChain seals masterKey into an encrypted enclave. The source slice is
// wiped. Returns [ErrKeyDerivationFailed] if the key has the wrong size.
func NewKeyChain(masterKey []byte) (KeyChain, error) {
	if len(masterKey) != MasterKeyLength {
		return nil, fmt.Errorf("%w: master key must be %d bytes, got %d",
			ErrKeyDerivationFailed, MasterKeyLength, len(masterKey))
	}

	return &keyChain{masterKey: memguard.NewEnclave(masterKey)}, nil
}

// NewKeyChainFromHex decodes a hex-encoded master key and calls [NewKeyChain].
func NewKeyChainFromHex(masterKeyHex string) (KeyChain, error) {
	if masterKeyHex == "" {
		return nil, fmt.Errorf("%w: master key is not configured", ErrKeyDerivationFailed)
	}

	key, err := hex.DecodeString(masterKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: master key is not valid hex", ErrKeyDerivationFailed)
	}

	return NewKeyChain(key)
}

// GenerateSalt implements [KeyChain].
func (k *keyChain) GenerateSalt() ([]byte, error) {
	return GenerateSalt()
}

// DeriveDataKey implements [KeyChain]. The master key is opened only for the
// duration of the derivation.
func (k *keyChain) DeriveDataKey(clientKey, salt []byte, userID string) (*Secret, error) {
	master, err := k.masterKey.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open master key: %w", ErrKeyDerivationFailed, err)
	}
	defer master.Destroy()

	dek, err := DeriveDEK(clientKey, master.Bytes(), salt, userID, DEKLength)
	if err != nil {
		return nil, err
	}

	return NewSecret(dek), nil
}
