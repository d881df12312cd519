package store

import (
	"database/sql"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/migrations"
)

// DB wraps the database/sql handle together with the driver name so that the
// repositories and migrations can stay driver-agnostic.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all pending schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
