// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
)

func (h *Handler) getSalt(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	key, err := h.services.EncryptionService.GetOrCreateSalt(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SaltResponse{
		Salt:          hex.EncodeToString(key.Salt),
		KDFIterations: key.KDFIterations,
	}, http.StatusOK)
}

func (h *Handler) validateKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ValidateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	clientKey, err := decodeKey(req.ClientKey, service.ErrInvalidClientKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer clear(clientKey)

	if err = h.services.EncryptionService.ValidateKey(r.Context(), userID, clientKey); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changePin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ChangePinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	oldKey, err := decodeKey(req.OldClientKey, service.ErrInvalidClientKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer clear(oldKey)

	newKey, err := decodeKey(req.NewClientKey, service.ErrInvalidClientKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer clear(newKey)

	newSalt, err := decodeKey(req.NewSalt, service.ErrInvalidDataProvided)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.services.EncryptionService.ChangePin(r.Context(), userID, oldKey, newKey, newSalt, req.KDFIterations)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Msg("pin changed")
	w.WriteHeader(http.StatusNoContent)
}

// decodeKey decodes a hex field of a request body. Failures wrap sentinel.
func decodeKey(value string, sentinel error) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: value is empty", sentinel)
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: not hex", sentinel)
	}
	return b, nil
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return "", false
	}
	return userID, true
}
