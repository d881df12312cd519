// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a transport-layer abstraction for communicating
// with the SmartFinder server.
//
// The primary abstraction is [ServerAdapter], which decouples callers (such
// as the CLI front end) from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/smartfinder/smartfinder/models"
)

// ServerAdapter defines transport-agnostic communication with the
// SmartFinder server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login opens a session and stores the returned bearer token.
	Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error)

	// Logoff closes the current session and clears the stored token.
	Logoff(ctx context.Context) (string, error)

	// ActiveUser returns the account that owns the current session.
	ActiveUser(ctx context.Context) (models.UserResponse, error)

	// RegisterUser creates a new account.
	RegisterUser(ctx context.Context, request models.UserRequest) (models.UserResponse, error)

	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, id int64) (models.UserResponse, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]models.UserResponse, error)

	// EditUser overwrites the account matched by request.Login.
	EditUser(ctx context.Context, request models.UserRequest) (models.UserResponse, error)

	// RemoveUser deletes the account with the given id.
	RemoveUser(ctx context.Context, id int64) (models.UserResponse, error)

	// ListUserDevices returns the devices owned by the given account.
	ListUserDevices(ctx context.Context, id int64) ([]models.DeviceResponse, error)

	// RegisterDevice creates a device owned by the logged-in user.
	RegisterDevice(ctx context.Context, request models.DeviceRequest) (models.DeviceResponse, error)

	// GetDevice returns the device with the given id.
	GetDevice(ctx context.Context, id int64) (models.DeviceResponse, error)

	// ListDevices returns every registered device.
	ListDevices(ctx context.Context) ([]models.DeviceResponse, error)

	// EditDevice renames the device addressed by request.ID.
	EditDevice(ctx context.Context, request models.DeviceEditRequest) (models.DeviceResponse, error)

	// RemoveDevice deletes the device with the given id.
	RemoveDevice(ctx context.Context, id int64) (models.DeviceResponse, error)
}
