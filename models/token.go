// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the parsed user identifier.
//
// SignedString holds the compact serialized form. UserID is the "sub" claim;
// user identifiers are UUID strings.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}

// GetUserID returns the "sub" claim of the token.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}
	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
