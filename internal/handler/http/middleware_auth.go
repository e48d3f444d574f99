// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/internal/utils"
)

// auth enforces JWT bearer authentication when the handler has a sign key
// and is a pass-through otherwise.
//
// On success the token subject is stored in the request context under
// [utils.WriterCtxKey]. Requests are rejected with 401 when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - it is not a bearer token ([ErrInvalidAuthorizationHeader]);
//   - the token fails validation ([ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.settings.TokenSignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.settings.TokenSignKey, h.settings.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.WriterCtxKey, token.Writer())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
