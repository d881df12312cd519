package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "login", "senha", "cpf", "email"}).
		AddRow(u.ID, u.Login, u.Senha, u.Cpf, u.Email)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Login: "alice",
		Senha: "$2a$12$digest",
		Cpf:   "12345678901",
		Email: "alice@example.com",
	}

	saved := user
	saved.ID = 1

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Login, user.Senha, user.Cpf, user.Email).
		WillReturnRows(userRows(saved))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Login != user.Login {
		t.Errorf("expected login %s, got %s", user.Login, created.Login)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "alice"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), models.User{Login: "alice"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestUpdateUserByLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	updated := models.User{
		ID:    7,
		Login: "alice",
		Senha: "$2a$12$new-digest",
		Cpf:   "10987654321",
		Email: "new@example.com",
	}

	mock.ExpectQuery("UPDATE users").
		WithArgs(updated.Senha, updated.Cpf, updated.Email, updated.Login).
		WillReturnRows(userRows(updated))

	got, err := repo.UpdateUserByLogin(context.Background(), updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != updated.Email {
		t.Errorf("expected email %s, got %s", updated.Email, got.Email)
	}
}

func TestUpdateUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUserByLogin(context.Background(), models.User{Login: "ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{ID: 3, Login: "bob", Senha: "digest", Cpf: "111", Email: "bob@x"}

	mock.ExpectQuery("SELECT id, login, senha, cpf, email").
		WithArgs(int64(3)).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Login != "bob" {
		t.Errorf("expected login bob, got %s", found.Login)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, login, senha, cpf, email").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, login, senha, cpf, email").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindAllUsers(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "login", "senha", "cpf", "email"}).
		AddRow(1, "alice", "d1", "111", "a@x").
		AddRow(2, "bob", "d2", "222", "b@x")

	mock.ExpectQuery("SELECT id, login, senha, cpf, email").
		WillReturnRows(rows)

	users, err := repo.FindAllUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestExistsByLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestDeleteUser_CascadesDevices(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	deviceRows := sqlmock.
		NewRows([]string{"id", "nome", "user_id"}).
		AddRow(10, "tracker-1", 5).
		AddRow(11, "tracker-2", 5)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, nome").
		WithArgs(int64(5)).
		WillReturnRows(deviceRows)
	mock.ExpectExec("DELETE FROM devices").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	devices, err := repo.DeleteUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 cascade-deleted devices, got %d", len(devices))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteUser_NotFoundRollsBack(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, nome").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "user_id"}))
	mock.ExpectExec("DELETE FROM devices").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.DeleteUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
