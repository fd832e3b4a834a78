// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

const (
	// DEKLength is the size of the data-encryption key (AES-256).
	DEKLength = 32

	dekInfoPrefix = "pulpe-dek-"
)

// DeriveDEK combines the client key and the server master key into the
// data-encryption key for one user.
//
// The input key material is clientKey ‖ masterKey, held in a locked buffer
// that is destroyed before the function returns. HKDF-SHA256 runs with the
// per-user salt and the info string "pulpe-dek-" + userID, so two users with
// identical client keys never share a DEK.
//
// The caller owns the returned slice and should wrap it in a [Secret].
func DeriveDEK(clientKey, masterKey, salt []byte, userID string, keyLength int) ([]byte, error) {
	switch {
	case len(clientKey) == 0:
		return nil, fmt.Errorf("%w: client key is empty", ErrKeyDerivationFailed)
	case len(masterKey) == 0:
		return nil, fmt.Errorf("%w: master key is not configured", ErrKeyDerivationFailed)
	case userID == "":
		return nil, fmt.Errorf("%w: user id is empty", ErrKeyDerivationFailed)
	}
	if keyLength < 1 {
		keyLength = DEKLength
	}

	ikm := memguard.NewBuffer(len(clientKey) + len(masterKey))
	defer ikm.Destroy()
	copy(ikm.Bytes(), clientKey)
	copy(ikm.Bytes()[len(clientKey):], masterKey)

	reader := hkdf.New(sha256.New, ikm.Bytes(), salt, []byte(dekInfoPrefix+userID))

	dek := make([]byte, keyLength)
	if _, err := io.ReadFull(reader, dek); err != nil {
		memguard.WipeBytes(dek)
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}

	return dek, nil
}
