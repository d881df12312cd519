// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/service"
	"github.com/smartfinder/smartfinder/internal/store"
	"github.com/smartfinder/smartfinder/internal/utils"
	"github.com/smartfinder/smartfinder/models"
)

// registerUser creates a new account from the request body.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UserRequest
	if !h.bind(w, r, &request) {
		return
	}

	created, err := h.services.User.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFields):
			utils.WriteMessage(w, "fill in all fields", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			utils.WriteMessage(w, "user already registered", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ToUserResponse(created, nil), http.StatusCreated)
}

// getUser returns the account addressed by the {id} route parameter.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		utils.WriteMessage(w, "no user with that id", http.StatusBadRequest)
		return
	}

	user, devices, err := h.services.User.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteMessage(w, "no user with that id", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user lookup")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToUserResponse(user, devices), http.StatusOK)
}

// listUsers returns every account with its owned devices.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, devicesByOwner, err := h.services.User.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, models.ToUserResponse(user, devicesByOwner[user.ID]))
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

// editUser overwrites the account matched by the login in the request body.
func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UserRequest
	if !h.bind(w, r, &request) {
		return
	}

	updated, err := h.services.User.EditUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			utils.WriteMessage(w, "user not found", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			utils.WriteMessage(w, "user already registered", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user edit")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	devices, err := h.services.User.ListUserDevices(ctx, updated.ID)
	if err != nil {
		log.Err(err).Msg("error listing devices of edited user")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToUserResponse(updated, devices), http.StatusOK)
}

// removeUser deletes the account addressed by the {id} route parameter,
// cascading deletion of its devices and closing its sessions.
func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		utils.WriteMessage(w, "no user with that id", http.StatusBadRequest)
		return
	}

	user, devices, err := h.services.User.RemoveUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteMessage(w, "no user with that id", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user removal")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToUserResponse(user, devices), http.StatusOK)
}

// listUserDevices returns the devices owned by the account addressed by the
// {id} route parameter.
func (h *Handler) listUserDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		utils.WriteMessage(w, "no user with that id", http.StatusBadRequest)
		return
	}

	devices, err := h.services.User.ListUserDevices(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteMessage(w, "no user with that id", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during owned-device listing")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToDeviceResponses(devices), http.StatusOK)
}
