// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strings"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/store"
	"github.com/smartfinder/smartfinder/models"
)

// deviceService implements [DeviceService].
type deviceService struct {
	devices store.DeviceRepository
	logger  *logger.Logger
}

// NewDeviceService constructs a [DeviceService].
func NewDeviceService(devices store.DeviceRepository, log *logger.Logger) DeviceService {
	log.Debug().Msg("creating device service")
	return &deviceService{
		devices: devices,
		logger:  log,
	}
}

// RegisterDevice creates a device owned by ownerID. The id carried by the
// request, if any, is discarded; the store assigns a fresh one.
//
// Error handling:
//   - blank or whitespace-only nome → [ErrBlankDeviceName].
//   - nome already held by another device → [store.ErrDeviceNameTaken].
func (s *deviceService) RegisterDevice(ctx context.Context, request models.DeviceRequest, ownerID int64) (models.Device, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Nome) == "" {
		return models.Device{}, ErrBlankDeviceName
	}

	if taken, err := s.devices.ExistsByNome(ctx, request.Nome); err != nil {
		return models.Device{}, err
	} else if taken {
		return models.Device{}, store.ErrDeviceNameTaken
	}

	device := models.DeviceFromRequest(request)
	device.UserID = ownerID

	created, err := s.devices.CreateDevice(ctx, device)
	if err != nil {
		return models.Device{}, err
	}

	log.Info().Int64("deviceID", created.ID).Int64("ownerID", ownerID).Msg("device registered")
	return created, nil
}

// GetDevice returns a device by id.
func (s *deviceService) GetDevice(ctx context.Context, id int64) (models.Device, error) {
	return s.devices.FindDeviceByID(ctx, id)
}

// ListDevices returns every registered device.
func (s *deviceService) ListDevices(ctx context.Context) ([]models.Device, error) {
	return s.devices.FindAllDevices(ctx)
}

// EditDevice renames the device addressed by request.ID.
//
// Error handling:
//   - blank or whitespace-only nome → [ErrBlankDeviceName].
//   - no device with that id → [store.ErrDeviceNotFound].
//   - nome held by a different device → [store.ErrDeviceNameTaken].
//     Renaming a device to its own current name is allowed.
func (s *deviceService) EditDevice(ctx context.Context, request models.DeviceEditRequest) (models.Device, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Nome) == "" {
		return models.Device{}, ErrBlankDeviceName
	}

	if _, err := s.devices.FindDeviceByID(ctx, request.ID); err != nil {
		return models.Device{}, err
	}

	if taken, err := s.devices.ExistsByNomeExcluding(ctx, request.Nome, request.ID); err != nil {
		return models.Device{}, err
	} else if taken {
		return models.Device{}, store.ErrDeviceNameTaken
	}

	renamed, err := s.devices.RenameDevice(ctx, request.ID, request.Nome)
	if err != nil {
		return models.Device{}, err
	}

	log.Info().Int64("deviceID", renamed.ID).Msg("device renamed")
	return renamed, nil
}

// RemoveDevice detaches the device from its owner and deletes it. The
// returned device carries a cleared owner, mirroring what was stored at the
// moment of deletion.
func (s *deviceService) RemoveDevice(ctx context.Context, id int64) (models.Device, error) {
	log := logger.FromContext(ctx)

	device, err := s.devices.FindDeviceByID(ctx, id)
	if err != nil {
		return models.Device{}, err
	}

	if err := s.devices.DeleteDevice(ctx, id); err != nil {
		return models.Device{}, err
	}

	device.UserID = 0
	log.Info().Int64("deviceID", id).Msg("device removed")

	return device, nil
}
