// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptionKey is the per-user key record.
//
// Salt and KDFIterations are fixed for one DEK generation. Changing either
// requires re-encrypting every amount of the user in the same transaction.
// KeyCheck is an envelope of the value 0 used to verify a derived key; nil
// until the user validates a key for the first time.
type EncryptionKey struct {
	UserID        string    `json:"-"`
	Salt          []byte    `json:"-"`
	KDFIterations int       `json:"kdf_iterations"`
	KeyCheck      *string   `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with EncryptionKey.
func (k EncryptionKey) TableName() string {
	return "user_encryption_key"
}

// HasKeyCheck reports whether a key-check has been stored.
func (k EncryptionKey) HasKeyCheck() bool {
	return k.KeyCheck != nil && *k.KeyCheck != ""
}
