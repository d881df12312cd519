package store

import (
	"context"
	"fmt"

	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	UserRepository   UserRepository
	DeviceRepository DeviceRepository
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		DeviceRepository: NewDeviceRepository(db, log),
	}, nil
}
