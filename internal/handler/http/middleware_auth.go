// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

// auth enforces HS256 JWT authentication. The "sub" claim of a valid token is
// the user id; it is stored under [utils.UserIDCtxKey] and added to the
// request logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID)
		})

		ctx := context.WithValue(l.WithContext(r.Context()), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
