// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/period"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

// errorStatuses is checked in order; the first sentinel err wraps wins.
// Authentication and PIN errors come before the generic ones.
var errorStatuses = []struct {
	err    error
	status int
}{
	{utils.ErrInvalidToken, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{crypto.ErrIncorrectPin, http.StatusForbidden},
	{service.ErrEncryptionNotSetUp, http.StatusPreconditionFailed},

	{ErrMissingClientKey, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{service.ErrInvalidClientKey, http.StatusBadRequest},
	{service.ErrMissingDataKey, http.StatusBadRequest},
	{service.ErrBudgetLineNotInBudget, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{store.ErrInvalidReference, http.StatusBadRequest},
	{period.ErrInvalidPeriod, http.StatusBadRequest},

	{store.ErrBudgetNotFound, http.StatusNotFound},

	{crypto.ErrDecryptionFailed, http.StatusInternalServerError},
	{crypto.ErrKeyDerivationFailed, http.StatusInternalServerError},
	{crypto.ErrEncryptionFailed, http.StatusInternalServerError},
	{service.ErrAmountMissing, http.StatusInternalServerError},
	{store.ErrTransactionNotSaved, http.StatusInternalServerError},
}

// statusFromError returns the status for err and the sentinel it matched,
// nil when nothing matched.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and answers with its mapped status. Client errors
// carry the sentinel text, server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError && target != nil {
		message = target.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
