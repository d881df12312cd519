package http

import (
	"context"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/service"
	"github.com/smartfinder/smartfinder/models"
)

// Function-field test doubles for the service interfaces. Tests assign only
// the methods they expect to be called.

type mockAuthService struct {
	LoginFunc        func(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	LogoffFunc       func(ctx context.Context, tokenString string)
	AuthenticateFunc func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	return m.LoginFunc(ctx, request)
}

func (m *mockAuthService) Logoff(ctx context.Context, tokenString string) {
	if m.LogoffFunc != nil {
		m.LogoffFunc(ctx, tokenString)
	}
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	return m.AuthenticateFunc(ctx, tokenString)
}

type mockUserService struct {
	RegisterFunc        func(ctx context.Context, request models.UserRequest) (models.User, error)
	GetUserFunc         func(ctx context.Context, id int64) (models.User, []models.Device, error)
	ListUsersFunc       func(ctx context.Context) ([]models.User, map[int64][]models.Device, error)
	EditUserFunc        func(ctx context.Context, request models.UserRequest) (models.User, error)
	RemoveUserFunc      func(ctx context.Context, id int64) (models.User, []models.Device, error)
	ListUserDevicesFunc func(ctx context.Context, id int64) ([]models.Device, error)
}

func (m *mockUserService) Register(ctx context.Context, request models.UserRequest) (models.User, error) {
	return m.RegisterFunc(ctx, request)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, []models.Device, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, map[int64][]models.Device, error) {
	return m.ListUsersFunc(ctx)
}

func (m *mockUserService) EditUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	return m.EditUserFunc(ctx, request)
}

func (m *mockUserService) RemoveUser(ctx context.Context, id int64) (models.User, []models.Device, error) {
	return m.RemoveUserFunc(ctx, id)
}

func (m *mockUserService) ListUserDevices(ctx context.Context, id int64) ([]models.Device, error) {
	return m.ListUserDevicesFunc(ctx, id)
}

type mockDeviceService struct {
	RegisterDeviceFunc func(ctx context.Context, request models.DeviceRequest, ownerID int64) (models.Device, error)
	GetDeviceFunc      func(ctx context.Context, id int64) (models.Device, error)
	ListDevicesFunc    func(ctx context.Context) ([]models.Device, error)
	EditDeviceFunc     func(ctx context.Context, request models.DeviceEditRequest) (models.Device, error)
	RemoveDeviceFunc   func(ctx context.Context, id int64) (models.Device, error)
}

func (m *mockDeviceService) RegisterDevice(ctx context.Context, request models.DeviceRequest, ownerID int64) (models.Device, error) {
	return m.RegisterDeviceFunc(ctx, request, ownerID)
}

func (m *mockDeviceService) GetDevice(ctx context.Context, id int64) (models.Device, error) {
	return m.GetDeviceFunc(ctx, id)
}

func (m *mockDeviceService) ListDevices(ctx context.Context) ([]models.Device, error) {
	return m.ListDevicesFunc(ctx)
}

func (m *mockDeviceService) EditDevice(ctx context.Context, request models.DeviceEditRequest) (models.Device, error) {
	return m.EditDeviceFunc(ctx, request)
}

func (m *mockDeviceService) RemoveDevice(ctx context.Context, id int64) (models.Device, error) {
	return m.RemoveDeviceFunc(ctx, id)
}

func newTestHandler(auth *mockAuthService, users *mockUserService, devices *mockDeviceService) *Handler {
	services := &service.Services{}
	if auth != nil {
		services.Auth = auth
	}
	if users != nil {
		services.User = users
	}
	if devices != nil {
		services.Device = devices
	}

	return NewHandler(services, logger.Nop())
}
