package service

import (
	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/store"
)

// Services bundles every business service behind a single dependency for the
// transport layer.
type Services struct {
	Auth   AuthService
	User   UserService
	Device DeviceService
}

// NewServices wires the services on top of the repositories. The session
// registry and password hasher are shared where needed: auth and user
// services must agree on both hashing and session revocation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	sessions := NewSessionRegistry()
	hasher := NewPasswordHasher(cfg.App.BcryptCost)

	return &Services{
		Auth:   NewAuthService(storages.UserRepository, sessions, hasher, cfg.App, log),
		User:   NewUserService(storages.UserRepository, storages.DeviceRepository, sessions, hasher, log),
		Device: NewDeviceService(storages.DeviceRepository, log),
	}
}
