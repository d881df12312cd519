// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/utils"
)

const msgNoUserLoggedIn = "no user logged in"

// auth is an HTTP middleware that guards routes requiring an open session.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, and validates it via [service.AuthService.Authenticate], which
// checks both the JWT itself and the live session registry. On success the
// caller's user id and session id are stored in the request context under
// [utils.UserIDCtxKey] and [utils.SessionIDCtxKey] before delegating to the
// next handler.
//
// Every rejection — missing header, malformed token, expired token, revoked
// session — produces the same 400 response with the "no user logged in"
// message, so callers cannot distinguish the failure modes.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Msg("request rejected: empty Authorization header")
			utils.WriteMessage(w, msgNoUserLoggedIn, http.StatusBadRequest)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Msg("request rejected: malformed Authorization header")
			utils.WriteMessage(w, msgNoUserLoggedIn, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		token, err := h.services.Auth.Authenticate(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("request rejected: no open session")
			utils.WriteMessage(w, msgNoUserLoggedIn, http.StatusBadRequest)
			return
		}

		// Store the caller's identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, token.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
