// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

const clientKeyHeader = "X-Client-Key"

// withClientKey derives the request DEK from the hex X-Client-Key header and
// puts it into the request context. The DEK is destroyed once the handler
// returns. Must run after auth.
func (h *Handler) withClientKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		raw := r.Header.Get(clientKeyHeader)
		if raw == "" {
			writeError(w, r, ErrMissingClientKey)
			return
		}

		clientKey, err := hex.DecodeString(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: not hex", service.ErrInvalidClientKey))
			return
		}

		dek, err := h.services.EncryptionService.DeriveRequestKey(ctx, userID, clientKey)
		clear(clientKey)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer dek.Destroy()

		next.ServeHTTP(w, r.WithContext(utils.WithDataKey(ctx, dek)))
	})
}
