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

// registerDevice creates a device owned by the caller. The route is guarded
// by the auth middleware, so the owner is always present in the context.
func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of a guarded route")
		utils.WriteMessage(w, msgNoUserLoggedIn, http.StatusBadRequest)
		return
	}

	var request models.DeviceRequest
	if !h.bind(w, r, &request) {
		return
	}

	created, err := h.services.Device.RegisterDevice(ctx, request, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlankDeviceName):
			utils.WriteMessage(w, "device name must not be blank", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDeviceNameTaken):
			utils.WriteMessage(w, "device already registered", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device registration")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ToDeviceResponse(created), http.StatusCreated)
}

// getDevice returns the device addressed by the {id} route parameter.
func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		utils.WriteMessage(w, "no device with that id", http.StatusBadRequest)
		return
	}

	device, err := h.services.Device.GetDevice(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrDeviceNotFound) {
			utils.WriteMessage(w, "no device with that id", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during device lookup")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToDeviceResponse(device), http.StatusOK)
}

// listDevices returns every registered device.
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	devices, err := h.services.Device.ListDevices(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during device listing")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToDeviceResponses(devices), http.StatusOK)
}

// editDevice renames the device addressed by the id in the request body.
// Misses and name conflicts answer 404, unlike the id-addressed routes.
func (h *Handler) editDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeviceEditRequest
	if !h.bind(w, r, &request) {
		return
	}

	renamed, err := h.services.Device.EditDevice(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlankDeviceName):
			utils.WriteMessage(w, "device name must not be blank", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDeviceNotFound):
			utils.WriteMessage(w, "no device with that id", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrDeviceNameTaken):
			utils.WriteMessage(w, "device name already in use", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device rename")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ToDeviceResponse(renamed), http.StatusOK)
}

// removeDevice deletes the device addressed by the {id} route parameter.
func (h *Handler) removeDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		utils.WriteMessage(w, "no device with that id", http.StatusBadRequest)
		return
	}

	removed, err := h.services.Device.RemoveDevice(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrDeviceNotFound) {
			utils.WriteMessage(w, "no device with that id", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during device removal")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ToDeviceResponse(removed), http.StatusOK)
}
