package models

// User is an account entity persisted in the "users" table.
// Login and Cpf are globally unique. Senha always holds the bcrypt digest of
// the user's password, never the plaintext; it must not cross the HTTP
// boundary — responses are shaped via [ToUserResponse], which omits it.
type User struct {
	// ID is the store-assigned identifier, immutable once set.
	ID int64 `json:"id"`

	// Login is the unique login name used for authentication.
	Login string `json:"login"`

	// Senha is the bcrypt digest stored in place of the plaintext password.
	// Excluded from JSON serialization.
	Senha string `json:"-"`

	// Cpf is the unique national taxpayer number of the account holder.
	Cpf string `json:"cpf"`

	// Email is the contact address of the account holder.
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
