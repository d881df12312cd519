package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err was caused by a uniqueness
// constraint, regardless of which of the two supported drivers produced it.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
