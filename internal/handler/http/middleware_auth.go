// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/digiplay/dineo/internal/app"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/internal/utils"
)

// auth requires a valid bearer token. On success the user and session ids
// are stored in the request context (see [utils.WithUser]).
//
// Responses:
//   - 401 "authorization required": no header, or not a bearer token.
//   - 401 "invalid token": the token does not verify or its session is gone.
//   - 500: the session store could not be reached.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("request without bearer token")
			utils.WriteError(w, app.MsgAuthorizationRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrInvalidOrExpiredToken) {
				log.Warn().Err(err).Msg("token rejected")
				utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.SessionID())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>". The scheme
// is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
