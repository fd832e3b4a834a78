// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const (
	FieldName          = "name"
	FieldKind          = "kind"
	FieldAmount        = "amount"
	FieldUserID        = "user_id"
	FieldSalt          = "salt"
	FieldKDFIterations = "kdf_iterations"
)

type LedgerValidator struct{}

func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTransactionRequest:
		return v.validateCreateTransaction(ctx, value, fields...)
	case *models.CreateTransactionRequest:
		return v.validateCreateTransaction(ctx, *value, fields...)

	case models.EncryptionKey:
		return v.validateEncryptionKey(ctx, value, fields...)
	case *models.EncryptionKey:
		return v.validateEncryptionKey(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerValidator) validateCreateTransaction(_ context.Context, req models.CreateTransactionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldKind, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldKind:
			if !req.Kind.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
			}
		case FieldAmount:
			if !req.Amount.Valid {
				return ErrEmptyAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEncryptionKey checks a key record about to be stored. The
// key-check is produced by the services and is not validated here.
func (v *LedgerValidator) validateEncryptionKey(_ context.Context, key models.EncryptionKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSalt, FieldKDFIterations}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if uuid.Validate(key.UserID) != nil {
				return ErrInvalidUserID
			}
		case FieldSalt:
			if len(key.Salt) < crypto.SaltLength {
				return fmt.Errorf("%w: must be at least %d bytes", ErrInvalidSalt, crypto.SaltLength)
			}
		case FieldKDFIterations:
			if key.KDFIterations <= 0 {
				return ErrInvalidKDFIterations
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
