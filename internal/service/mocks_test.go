package service

import (
	"context"

	"github.com/smartfinder/smartfinder/models"
)

// mockUserRepository is a function-field test double for store.UserRepository.
// Tests assign only the methods they expect to be called; an unassigned
// method panics, flagging an unexpected repository interaction.
type mockUserRepository struct {
	CreateUserFunc        func(ctx context.Context, user models.User) (models.User, error)
	UpdateUserByLoginFunc func(ctx context.Context, user models.User) (models.User, error)
	FindUserByIDFunc      func(ctx context.Context, id int64) (models.User, error)
	FindUserByLoginFunc   func(ctx context.Context, login string) (models.User, error)
	FindAllUsersFunc      func(ctx context.Context) ([]models.User, error)
	ExistsByLoginFunc     func(ctx context.Context, login string) (bool, error)
	ExistsByCpfFunc       func(ctx context.Context, cpf string) (bool, error)
	DeleteUserFunc        func(ctx context.Context, id int64) ([]models.Device, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFunc(ctx, user)
}

func (m *mockUserRepository) UpdateUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	return m.UpdateUserByLoginFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.FindUserByIDFunc(ctx, id)
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return m.FindUserByLoginFunc(ctx, login)
}

func (m *mockUserRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return m.FindAllUsersFunc(ctx)
}

func (m *mockUserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return m.ExistsByLoginFunc(ctx, login)
}

func (m *mockUserRepository) ExistsByCpf(ctx context.Context, cpf string) (bool, error) {
	return m.ExistsByCpfFunc(ctx, cpf)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) ([]models.Device, error) {
	return m.DeleteUserFunc(ctx, id)
}

// mockDeviceRepository is a function-field test double for
// store.DeviceRepository.
type mockDeviceRepository struct {
	CreateDeviceFunc          func(ctx context.Context, device models.Device) (models.Device, error)
	RenameDeviceFunc          func(ctx context.Context, id int64, nome string) (models.Device, error)
	FindDeviceByIDFunc        func(ctx context.Context, id int64) (models.Device, error)
	FindAllDevicesFunc        func(ctx context.Context) ([]models.Device, error)
	FindDevicesByUserFunc     func(ctx context.Context, userID int64) ([]models.Device, error)
	ExistsByNomeFunc          func(ctx context.Context, nome string) (bool, error)
	ExistsByNomeExcludingFunc func(ctx context.Context, nome string, id int64) (bool, error)
	DeleteDeviceFunc          func(ctx context.Context, id int64) error
}

func (m *mockDeviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	return m.CreateDeviceFunc(ctx, device)
}

func (m *mockDeviceRepository) RenameDevice(ctx context.Context, id int64, nome string) (models.Device, error) {
	return m.RenameDeviceFunc(ctx, id, nome)
}

func (m *mockDeviceRepository) FindDeviceByID(ctx context.Context, id int64) (models.Device, error) {
	return m.FindDeviceByIDFunc(ctx, id)
}

func (m *mockDeviceRepository) FindAllDevices(ctx context.Context) ([]models.Device, error) {
	return m.FindAllDevicesFunc(ctx)
}

func (m *mockDeviceRepository) FindDevicesByUser(ctx context.Context, userID int64) ([]models.Device, error) {
	return m.FindDevicesByUserFunc(ctx, userID)
}

func (m *mockDeviceRepository) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	return m.ExistsByNomeFunc(ctx, nome)
}

func (m *mockDeviceRepository) ExistsByNomeExcluding(ctx context.Context, nome string, id int64) (bool, error) {
	return m.ExistsByNomeExcludingFunc(ctx, nome, id)
}

func (m *mockDeviceRepository) DeleteDevice(ctx context.Context, id int64) error {
	return m.DeleteDeviceFunc(ctx, id)
}
