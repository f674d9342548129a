// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/rs/zerolog"
)

// auth enforces bearer token authentication.
//
// The token is taken from the "Authorization" header and validated by
// [service.AuthService.ParseToken]. On success the token subject is stored
// in the request context (see [utils.WithClient]) and added to the request
// logger as "client". Any failure is answered with 401 and an
// "unauthorized" error body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		client, err := token.GetClient()
		if err != nil {
			writeError(w, r, "*Handler.auth", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		log := logger.FromContext(ctx)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("client", client)
		})
		ctx = log.WithContext(utils.WithClient(ctx, client))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
