// SPDX-License-Identifier: Apache-2.0

package store

import (
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, senha, cpf, email)
    VALUES ($1, $2, $3, $4)
    RETURNING id, login, senha, cpf, email;`

	// Placeholders appear in ascending textual order: SQLite assigns $N
	// indexes by order of first occurrence, not by number.
	updateUserByLogin = `UPDATE users
    SET senha = $1, cpf = $2, email = $3
    WHERE login = $4
    RETURNING id, login, senha, cpf, email;`

	findUserByID = `SELECT id, login, senha, cpf, email
    FROM users
    WHERE id = $1;`

	findUserByLogin = `SELECT id, login, senha, cpf, email
    FROM users
    WHERE login = $1;`

	findAllUsers = `SELECT id, login, senha, cpf, email
    FROM users
    ORDER BY id;`

	existsUserByLogin = `SELECT EXISTS (SELECT 1 FROM users WHERE login = $1);`

	existsUserByCpf = `SELECT EXISTS (SELECT 1 FROM users WHERE cpf = $1);`

	deleteUserDevices = `DELETE FROM devices WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createDevice = `INSERT INTO devices (nome, user_id)
    VALUES ($1, $2)
    RETURNING id, nome, COALESCE(user_id, 0);`

	renameDevice = `UPDATE devices
    SET nome = $1
    WHERE id = $2
    RETURNING id, nome, COALESCE(user_id, 0);`

	findDeviceByID = `SELECT id, nome, COALESCE(user_id, 0)
    FROM devices
    WHERE id = $1;`

	existsDeviceByNome = `SELECT EXISTS (SELECT 1 FROM devices WHERE nome = $1);`

	existsDeviceByNomeExcluding = `SELECT EXISTS (SELECT 1 FROM devices WHERE nome = $1 AND id <> $2);`

	detachDevice = `UPDATE devices SET user_id = NULL WHERE id = $1;`

	deleteDevice = `DELETE FROM devices WHERE id = $1;`
)

// queryBuilder produces $N placeholders, which both supported drivers accept.
var queryBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildSelectDevices builds the device listing query. With ownerID zero the
// query selects every device; otherwise it is filtered to a single owner.
func buildSelectDevices(ownerID int64) (string, []any, error) {
	builder := queryBuilder.
		Select("id", "nome", "COALESCE(user_id, 0)").
		From("devices").
		OrderBy("id")

	if ownerID != 0 {
		builder = builder.Where(squirrel.Eq{"user_id": ownerID})
	}

	return builder.ToSql()
}
