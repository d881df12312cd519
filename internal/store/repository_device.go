package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/models"
)

// deviceRepository is the SQL-backed implementation of [DeviceRepository].
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDevice persists a new device row owned by device.UserID and returns
// the record with its store-assigned id.
// A nome uniqueness violation is reported as [ErrDeviceNameTaken].
func (r *deviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	var created models.Device
	row := r.db.QueryRowContext(ctx, createDevice, device.Nome, device.UserID)

	if err := row.Scan(&created.ID, &created.Nome, &created.UserID); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: device insert failed")

		if isUniqueViolation(err) {
			return models.Device{}, ErrDeviceNameTaken
		}
		return models.Device{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// RenameDevice sets a new nome on the device matched by id and returns the
// updated record. Returns [ErrDeviceNotFound] when no row matches and
// [ErrDeviceNameTaken] when another device already holds the name.
func (r *deviceRepository) RenameDevice(ctx context.Context, id int64, nome string) (models.Device, error) {
	log := logger.FromContext(ctx)

	var renamed models.Device
	row := r.db.QueryRowContext(ctx, renameDevice, nome, id)

	if err := row.Scan(&renamed.ID, &renamed.Nome, &renamed.UserID); err != nil {
		log.Err(err).Str("func", "*deviceRepository.RenameDevice").Msg("error: device rename failed")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Device{}, ErrDeviceNotFound
		case isUniqueViolation(err):
			return models.Device{}, ErrDeviceNameTaken
		default:
			return models.Device{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return renamed, nil
}

// FindDeviceByID retrieves a device record by its store-assigned id.
func (r *deviceRepository) FindDeviceByID(ctx context.Context, id int64) (models.Device, error) {
	return r.findOne(ctx, findDeviceByID, id)
}

func (r *deviceRepository) findOne(ctx context.Context, query string, arg any) (models.Device, error) {
	log := logger.FromContext(ctx)

	var found models.Device
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&found.ID, &found.Nome, &found.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}

		log.Err(err).Str("func", "*deviceRepository.findOne").Msg("error: device lookup failed")
		return models.Device{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindAllDevices lists every device row ordered by id.
func (r *deviceRepository) FindAllDevices(ctx context.Context) ([]models.Device, error) {
	return r.findMany(ctx, 0)
}

// FindDevicesByUser lists the devices owned by the given user.
func (r *deviceRepository) FindDevicesByUser(ctx context.Context, userID int64) ([]models.Device, error) {
	return r.findMany(ctx, userID)
}

func (r *deviceRepository) findMany(ctx context.Context, ownerID int64) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDevices(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	devices, err := scanDevices(r.db.QueryContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.findMany").Msg("error: device listing failed")
		return nil, err
	}

	return devices, nil
}

// ExistsByNome reports whether any device row holds the given name.
func (r *deviceRepository) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsDeviceByNome, nome).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*deviceRepository.ExistsByNome").Msg("error: existence check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// ExistsByNomeExcluding reports whether a device other than the one with the
// given id holds the given name. Used by rename conflict checks.
func (r *deviceRepository) ExistsByNomeExcluding(ctx context.Context, nome string, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsDeviceByNomeExcluding, nome, id).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*deviceRepository.ExistsByNomeExcluding").Msg("error: existence check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteDevice detaches the device from its owner and removes the row inside
// a single transaction. Returns [ErrDeviceNotFound] when no row matches.
func (r *deviceRepository) DeleteDevice(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.DeleteDevice").Msg("error: begin transaction failed")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, detachDevice, id)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.DeleteDevice").Msg("error: device detach failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrDeviceNotFound
	}

	if _, err := tx.ExecContext(ctx, deleteDevice, id); err != nil {
		log.Err(err).Str("func", "*deviceRepository.DeleteDevice").Msg("error: device delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.DeleteDevice").Msg("error: commit failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// scanDevices drains a device result set produced by one of the
// [buildSelectDevices] queries.
func scanDevices(rows *sql.Rows, err error) ([]models.Device, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0)
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.ID, &d.Nome, &d.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return devices, nil
}
