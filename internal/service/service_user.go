// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/store"
	"github.com/smartfinder/smartfinder/models"
)

// userService implements [UserService].
type userService struct {
	users    store.UserRepository
	devices  store.DeviceRepository
	sessions *SessionRegistry
	hasher   *PasswordHasher
	logger   *logger.Logger
}

// NewUserService constructs a [UserService].
func NewUserService(users store.UserRepository, devices store.DeviceRepository, sessions *SessionRegistry, hasher *PasswordHasher, log *logger.Logger) UserService {
	log.Debug().Msg("creating user service")
	return &userService{
		users:    users,
		devices:  devices,
		sessions: sessions,
		hasher:   hasher,
		logger:   log,
	}
}

// Register creates a new account. The password is bcrypt-hashed before it is
// stored; the plain text never reaches the repository.
//
// Error handling:
//   - any blank field → [ErrEmptyFields].
//   - login or cpf already held by another account → [store.ErrUserAlreadyExists].
func (s *userService) Register(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Login == "" || request.Senha == "" || request.Cpf == "" || request.Email == "" {
		return models.User{}, ErrEmptyFields
	}

	if taken, err := s.users.ExistsByLogin(ctx, request.Login); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, store.ErrUserAlreadyExists
	}

	if taken, err := s.users.ExistsByCpf(ctx, request.Cpf); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, store.ErrUserAlreadyExists
	}

	digest, err := s.hasher.Hash(request.Senha)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error: password hashing failed")
		return models.User{}, err
	}

	user := models.UserFromRequest(request)
	user.Senha = digest

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	log.Info().Int64("userID", created.ID).Msg("user registered")
	return created, nil
}

// GetUser returns the account and the devices it owns.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, []models.Device, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, nil, err
	}

	devices, err := s.devices.FindDevicesByUser(ctx, user.ID)
	if err != nil {
		return models.User{}, nil, err
	}

	return user, devices, nil
}

// ListUsers returns every account together with a map of owned devices keyed
// by owner id. Devices without an owner do not appear in the map.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, map[int64][]models.Device, error) {
	users, err := s.users.FindAllUsers(ctx)
	if err != nil {
		return nil, nil, err
	}

	devices, err := s.devices.FindAllDevices(ctx)
	if err != nil {
		return nil, nil, err
	}

	byOwner := make(map[int64][]models.Device)
	for _, d := range devices {
		if d.UserID != 0 {
			byOwner[d.UserID] = append(byOwner[d.UserID], d)
		}
	}

	return users, byOwner, nil
}

// EditUser overwrites senha, cpf, and email on the account matched by login.
// The incoming password is re-hashed even when unchanged, so an edit always
// rotates the stored digest.
func (s *userService) EditUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := s.hasher.Hash(request.Senha)
	if err != nil {
		log.Err(err).Str("func", "*userService.EditUser").Msg("error: password hashing failed")
		return models.User{}, err
	}

	user := models.UserFromRequest(request)
	user.Senha = digest

	updated, err := s.users.UpdateUserByLogin(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	log.Info().Int64("userID", updated.ID).Msg("user edited")
	return updated, nil
}

// RemoveUser deletes the account and its devices in one transaction, then
// closes every session the account holds. A logged-in user that deletes its
// own account is logged off by the same call.
func (s *userService) RemoveUser(ctx context.Context, id int64) (models.User, []models.Device, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, nil, err
	}

	devices, err := s.users.DeleteUser(ctx, id)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("error removing user: %w", err)
	}

	s.sessions.RevokeUser(id)
	log.Info().Int64("userID", id).Int("cascadeDeletedDevices", len(devices)).Msg("user removed")

	return user, devices, nil
}

// ListUserDevices returns the devices owned by the given account.
// Returns [store.ErrUserNotFound] when the account does not exist.
func (s *userService) ListUserDevices(ctx context.Context, id int64) ([]models.Device, error) {
	if _, err := s.users.FindUserByID(ctx, id); err != nil {
		return nil, err
	}

	return s.devices.FindDevicesByUser(ctx, id)
}
