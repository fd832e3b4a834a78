// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"

	"github.com/shopspring/decimal"
)

// Envelope layout: IV(12) ‖ TAG(16) ‖ CIPHERTEXT(N), base64 (std) encoded.
const (
	ivLength          = 12
	tagLength         = 16
	envelopeMinLength = ivLength + tagLength
)

var plainAmountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsPlainAmount reports whether s is a plain decimal number (optional minus,
// digits, optional fraction). Envelopes never match.
func IsPlainAmount(s string) bool {
	return plainAmountPattern.MatchString(s)
}

// EncryptAmount encrypts one amount with AES-256-GCM under dek.
//
// The amount is serialized with decimal.Decimal.String: '.' separator, no
// exponent, no grouping. A fresh random IV is drawn for every call.
func EncryptAmount(dek []byte, amount decimal.Decimal) (string, error) {
	gcm, err := newGCM(dek)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrEncryptionFailed, err)
	}

	// Seal appends the tag after the ciphertext; the envelope stores it first.
	sealed := gcm.Seal(nil, iv, []byte(amount.String()), nil)
	ctLen := len(sealed) - tagLength

	blob := make([]byte, 0, envelopeMinLength+ctLen)
	blob = append(blob, iv...)
	blob = append(blob, sealed[ctLen:]...)
	blob = append(blob, sealed[:ctLen]...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptAmount opens an envelope produced by [EncryptAmount].
//
// Every failure wraps [ErrDecryptionFailed]; a zero amount is never returned
// in place of an error.
func DecryptAmount(dek []byte, envelope string) (decimal.Decimal, error) {
	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid base64", ErrDecryptionFailed)
	}
	if len(blob) < envelopeMinLength {
		return decimal.Decimal{}, fmt.Errorf("%w: envelope too short", ErrDecryptionFailed)
	}

	gcm, err := newGCM(dek)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	iv := blob[:ivLength]
	tag := blob[ivLength:envelopeMinLength]
	ciphertext := blob[envelopeMinLength:]

	sealed := make([]byte, 0, len(ciphertext)+tagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: authentication failed", ErrDecryptionFailed)
	}

	if !plainAmountPattern.Match(plaintext) {
		return decimal.Decimal{}, fmt.Errorf("%w: plaintext is not a canonical number", ErrDecryptionFailed)
	}

	amount, err := decimal.NewFromString(string(plaintext))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return amount, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != DEKLength {
		return nil, fmt.Errorf("key must be %d bytes, got %d", DEKLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithTagSize(block, tagLength)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
