package models

// ResponseMessage is the error-payload body shared by all failure paths.
// A fresh value is constructed at every write site; it is never reused
// between requests.
type ResponseMessage struct {
	Mensagem string `json:"mensagem"`
}

// UserResponse is the outgoing shape of a user. It mirrors the stored entity
// minus the password digest and carries the user's owned devices.
type UserResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Cpf   string `json:"cpf"`
	Email string `json:"email"`

	// Dispositivos is the (order-irrelevant) collection of devices owned by
	// the user. Serialized as an empty list rather than null when the user
	// owns nothing.
	Dispositivos []DeviceResponse `json:"dispositivos"`
}

// DeviceResponse is the outgoing shape of a device.
type DeviceResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`

	// UsuarioID is the id of the owning user, zero when the device has been
	// detached during deletion.
	UsuarioID int64 `json:"usuario_id,omitempty"`
}
