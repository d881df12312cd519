package store

import (
	"context"
	"errors"
	"testing"

	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/models"
)

// These tests run against a real in-memory SQLite database. The sqlmock tests
// cannot see driver binding semantics: SQLite assigns $N parameter indexes by
// order of first occurrence in the statement, so an UPDATE whose WHERE
// placeholder precedes the SET placeholders binds arguments to the wrong
// columns without any error.

func newSQLiteStore(t *testing.T) (UserRepository, DeviceRepository) {
	t.Helper()

	l := logger.Nop()
	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: "sqlite3", DSN: ":memory:"}, l)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewUserRepository(db, l), NewDeviceRepository(db, l)
}

func TestSQLiteUpdateUserByLogin(t *testing.T) {
	users, _ := newSQLiteStore(t)
	ctx := context.Background()

	created, err := users.CreateUser(ctx, models.User{
		Login: "alice",
		Senha: "$2a$12$digest",
		Cpf:   "12345678901",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	updated, err := users.UpdateUserByLogin(ctx, models.User{
		Login: "alice",
		Senha: "$2a$12$new-digest",
		Cpf:   "10987654321",
		Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("expected ID %d, got %d", created.ID, updated.ID)
	}
	if updated.Login != "alice" {
		t.Errorf("expected login alice, got %s", updated.Login)
	}
	if updated.Senha != "$2a$12$new-digest" || updated.Email != "new@example.com" {
		t.Errorf("columns bound to wrong arguments: %+v", updated)
	}

	found, err := users.FindUserByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected lookup error: %v", err)
	}
	if found.Cpf != "10987654321" {
		t.Errorf("expected updated cpf persisted, got %s", found.Cpf)
	}
}

func TestSQLiteUpdateUserByLogin_NotFound(t *testing.T) {
	users, _ := newSQLiteStore(t)

	_, err := users.UpdateUserByLogin(context.Background(), models.User{Login: "ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSQLiteRenameDevice(t *testing.T) {
	users, devices := newSQLiteStore(t)
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, models.User{
		Login: "alice",
		Senha: "digest",
		Cpf:   "12345678901",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	created, err := devices.CreateDevice(ctx, models.Device{Nome: "tracker-1", UserID: owner.ID})
	if err != nil {
		t.Fatalf("unexpected device create error: %v", err)
	}

	renamed, err := devices.RenameDevice(ctx, created.ID, "tracker-renamed")
	if err != nil {
		t.Fatalf("unexpected rename error: %v", err)
	}

	if renamed.ID != created.ID {
		t.Errorf("expected ID %d, got %d", created.ID, renamed.ID)
	}
	if renamed.Nome != "tracker-renamed" {
		t.Errorf("expected renamed nome, got %s", renamed.Nome)
	}

	found, err := devices.FindDeviceByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected lookup error: %v", err)
	}
	if found.Nome != "tracker-renamed" {
		t.Errorf("expected rename persisted, got %s", found.Nome)
	}
}

func TestSQLiteRenameDevice_NotFound(t *testing.T) {
	_, devices := newSQLiteStore(t)

	_, err := devices.RenameDevice(context.Background(), 404, "whatever")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}

func TestSQLiteRenameDevice_NameTaken(t *testing.T) {
	users, devices := newSQLiteStore(t)
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, models.User{
		Login: "alice",
		Senha: "digest",
		Cpf:   "12345678901",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	if _, err := devices.CreateDevice(ctx, models.Device{Nome: "tracker-1", UserID: owner.ID}); err != nil {
		t.Fatalf("unexpected device create error: %v", err)
	}
	second, err := devices.CreateDevice(ctx, models.Device{Nome: "tracker-2", UserID: owner.ID})
	if err != nil {
		t.Fatalf("unexpected device create error: %v", err)
	}

	_, err = devices.RenameDevice(ctx, second.ID, "tracker-1")
	if !errors.Is(err, ErrDeviceNameTaken) {
		t.Fatalf("expected ErrDeviceNameTaken, got %v", err)
	}
}
