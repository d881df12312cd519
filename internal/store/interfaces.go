package store

import (
	"context"

	"github.com/smartfinder/smartfinder/models"
)

// UserRepository is the persistence contract for user rows.
type UserRepository interface {
	// CreateUser persists a new user and returns the row with its
	// store-assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUserByLogin overwrites the senha, cpf and email of the user
	// matched by login and returns the updated row.
	UpdateUserByLogin(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByLogin retrieves a user by login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindAllUsers lists every user ordered by id.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// ExistsByLogin reports whether any user holds the given login.
	ExistsByLogin(ctx context.Context, login string) (bool, error)

	// ExistsByCpf reports whether any user holds the given cpf.
	ExistsByCpf(ctx context.Context, cpf string) (bool, error)

	// DeleteUser removes the user and all devices it owns inside a single
	// transaction, returning the devices that were cascade-deleted.
	DeleteUser(ctx context.Context, id int64) ([]models.Device, error)
}

// DeviceRepository is the persistence contract for device rows.
type DeviceRepository interface {
	// CreateDevice persists a new device owned by device.UserID and returns
	// the row with its store-assigned id.
	CreateDevice(ctx context.Context, device models.Device) (models.Device, error)

	// RenameDevice sets a new nome on the device matched by id and returns
	// the updated row.
	RenameDevice(ctx context.Context, id int64, nome string) (models.Device, error)

	// FindDeviceByID retrieves a device by id.
	FindDeviceByID(ctx context.Context, id int64) (models.Device, error)

	// FindAllDevices lists every device ordered by id.
	FindAllDevices(ctx context.Context) ([]models.Device, error)

	// FindDevicesByUser lists the devices owned by the given user.
	FindDevicesByUser(ctx context.Context, userID int64) ([]models.Device, error)

	// ExistsByNome reports whether any device holds the given name.
	ExistsByNome(ctx context.Context, nome string) (bool, error)

	// ExistsByNomeExcluding reports whether a device other than the one with
	// the given id holds the given name.
	ExistsByNomeExcluding(ctx context.Context, nome string, id int64) (bool, error)

	// DeleteDevice detaches the device from its owner and removes the row,
	// both inside a single transaction.
	DeleteDevice(ctx context.Context, id int64) error
}
