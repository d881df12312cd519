package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a query expected to match a user row
	// produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrDeviceNotFound is returned when a query expected to match a device
	// row produces an empty result set.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrUserAlreadyExists is returned when an INSERT or UPDATE on the users
	// table violates the login or cpf uniqueness constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrDeviceNameTaken is returned when an INSERT or UPDATE on the devices
	// table violates the nome uniqueness constraint.
	ErrDeviceNameTaken = errors.New("device name already taken")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
