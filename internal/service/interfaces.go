// SPDX-License-Identifier: Apache-2.0

// Package service implements the business rules of the application:
// authentication and session lifecycle, user account management with
// password hashing, and device registration bound to the logged-in user.
package service

import (
	"context"

	"github.com/smartfinder/smartfinder/models"
)

// AuthService manages login sessions.
type AuthService interface {
	// Login checks the credentials and, on success, opens a session and
	// returns the account together with its signed session token.
	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)

	// Logoff closes the session carried by the given token string. It is a
	// no-op for tokens that are invalid or already logged off.
	Logoff(ctx context.Context, tokenString string)

	// Authenticate validates the token string and checks that its session is
	// still open. Returns the parsed token with UserID and SessionID set.
	Authenticate(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages user accounts.
type UserService interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, request models.UserRequest) (models.User, error)

	// GetUser returns an account and the devices it owns.
	GetUser(ctx context.Context, id int64) (models.User, []models.Device, error)

	// ListUsers returns every account together with the devices each one
	// owns, keyed by owner id.
	ListUsers(ctx context.Context) ([]models.User, map[int64][]models.Device, error)

	// EditUser overwrites the senha, cpf, and email of the account matched
	// by login. The new password is hashed before being stored.
	EditUser(ctx context.Context, request models.UserRequest) (models.User, error)

	// RemoveUser deletes the account and every device it owns, and closes
	// any sessions the account holds. Returns the removed account and the
	// cascade-deleted devices.
	RemoveUser(ctx context.Context, id int64) (models.User, []models.Device, error)

	// ListUserDevices returns the devices owned by the given account.
	ListUserDevices(ctx context.Context, id int64) ([]models.Device, error)
}

// DeviceService manages location-tracker devices.
type DeviceService interface {
	// RegisterDevice creates a new device owned by ownerID.
	RegisterDevice(ctx context.Context, request models.DeviceRequest, ownerID int64) (models.Device, error)

	// GetDevice returns a device by id.
	GetDevice(ctx context.Context, id int64) (models.Device, error)

	// ListDevices returns every registered device.
	ListDevices(ctx context.Context) ([]models.Device, error)

	// EditDevice renames the device addressed by request.ID.
	EditDevice(ctx context.Context, request models.DeviceEditRequest) (models.Device, error)

	// RemoveDevice detaches the device from its owner and deletes it.
	// Returns the removed device with the owner already cleared.
	RemoveDevice(ctx context.Context, id int64) (models.Device, error)
}
