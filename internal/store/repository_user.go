package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account rows in the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with its store-assigned id.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - uniqueness violation on login or cpf → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	row := r.db.QueryRowContext(ctx, createUser, user.Login, user.Senha, user.Cpf, user.Email)

	if err := row.Scan(&created.ID, &created.Login, &created.Senha, &created.Cpf, &created.Email); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// UpdateUserByLogin overwrites senha, cpf, and email on the user row matched
// by login and returns the updated record.
//
// Error handling:
//   - no row matched the login → [ErrUserNotFound].
//   - uniqueness violation on cpf → [ErrUserAlreadyExists].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) UpdateUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	row := r.db.QueryRowContext(ctx, updateUserByLogin, user.Senha, user.Cpf, user.Email, user.Login)

	if err := row.Scan(&updated.ID, &updated.Login, &updated.Senha, &updated.Cpf, &updated.Email); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserByLogin").Msg("error: user update failed")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		case isUniqueViolation(err):
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return updated, nil
}

// FindUserByID retrieves a user record by its store-assigned id.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

// FindUserByLogin retrieves a user record by its unique login.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, findUserByLogin, login)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&found.ID, &found.Login, &found.Senha, &found.Cpf, &found.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindAllUsers lists every user row ordered by id.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error: user listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Senha, &u.Cpf, &u.Email); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// ExistsByLogin reports whether any user row holds the given login.
func (r *userRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return r.exists(ctx, existsUserByLogin, login)
}

// ExistsByCpf reports whether any user row holds the given cpf.
func (r *userRepository) ExistsByCpf(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, existsUserByCpf, cpf)
}

func (r *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.exists").Msg("error: existence check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteUser removes the user row and every device it owns inside a single
// transaction. The cascade order is devices first, then the user, so the
// foreign key constraint is never violated.
//
// Returns the devices that were cascade-deleted, or [ErrUserNotFound] when
// the user row does not exist (in which case nothing is deleted).
func (r *userRepository) DeleteUser(ctx context.Context, id int64) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: begin transaction failed")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectDevices(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	devices, err := scanDevices(tx.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: listing owned devices failed")
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, deleteUserDevices, id); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: cascade device delete failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: user delete failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: commit failed")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return devices, nil
}
