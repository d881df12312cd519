package models

// LoginRequest is the wire shape of a login attempt.
// Emptiness of the fields is checked by the service layer so that the
// contract message ("fill in all fields") is produced there, not by binding.
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// UserRequest is the wire shape used for user registration and editing.
// It never carries an id: registration ids are store-assigned and edits are
// matched by login. The max tags mirror the column widths enforced by the
// database schema.
type UserRequest struct {
	Login string `json:"login" validate:"max=200"`
	Senha string `json:"senha" validate:"max=300"`
	Cpf   string `json:"cpf" validate:"max=11"`
	Email string `json:"email" validate:"max=254"`
}

// DeviceRequest is the wire shape of a device registration.
// The owner is never part of the payload; it is resolved from the caller's
// session.
type DeviceRequest struct {
	Nome string `json:"nome"`
}

// DeviceEditRequest is the wire shape of a device rename. The target device
// is addressed by id and Nome carries the new name.
type DeviceEditRequest struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}
