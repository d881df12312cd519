// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/service"
	"github.com/smartfinder/smartfinder/internal/store"
	"github.com/smartfinder/smartfinder/internal/utils"
	"github.com/smartfinder/smartfinder/models"
)

// login opens a session for the credentials in the request body. The signed
// session token is returned in the "Authorization" response header; the body
// carries the account (digest redacted) with its owned devices.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !h.bind(w, r, &request) {
		return
	}

	user, token, err := h.services.Auth.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFields):
			utils.WriteMessage(w, "fill in all fields", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			utils.WriteMessage(w, "user not found", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			utils.WriteMessage(w, "wrong password", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	devices, err := h.services.User.ListUserDevices(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("error listing devices of logged-in user")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.ToUserResponse(user, devices), http.StatusAccepted)
}

// logoff closes the session carried by the bearer token, if any. It never
// fails: with or without an open session the caller ends up logged off.
func (h *Handler) logoff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if tokenString, err := utils.ParseBearerToken(authHeader); err == nil {
			h.services.Auth.Logoff(ctx, tokenString)
		}
	}

	utils.WriteMessage(w, "session closed", http.StatusAccepted)
}

// activeUser returns the account that owns the caller's session. The route
// is guarded by the auth middleware, so the user id is always present in the
// context.
func (h *Handler) activeUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of a guarded route")
		utils.WriteMessage(w, msgNoUserLoggedIn, http.StatusBadRequest)
		return
	}

	user, devices, err := h.services.User.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error loading the logged-in user")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToUserResponse(user, devices), http.StatusOK)
}

// welcome serves the landing greeting.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Bem-vindo ao SmartFinder!"))
}
