package models

// Mappers are pure transforms between wire shapes and stored entities.
// Request mappers never carry an id; response mappers never expose the
// password digest.

// UserFromRequest builds a User entity from an incoming registration or edit
// payload. The id is left zero: on registration the store assigns it, on
// edit the matched row keeps its own.
func UserFromRequest(req UserRequest) User {
	return User{
		Login: req.Login,
		Senha: req.Senha,
		Cpf:   req.Cpf,
		Email: req.Email,
	}
}

// DeviceFromRequest builds a Device entity from an incoming registration
// payload. The id and owner are left zero; the service assigns the owner
// from the caller's session and the store assigns the id.
func DeviceFromRequest(req DeviceRequest) Device {
	return Device{
		Nome: req.Nome,
	}
}

// ToUserResponse shapes a stored user and its owned devices for the wire,
// redacting the password digest.
func ToUserResponse(u User, devices []Device) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Login:        u.Login,
		Cpf:          u.Cpf,
		Email:        u.Email,
		Dispositivos: make([]DeviceResponse, 0, len(devices)),
	}

	for _, d := range devices {
		resp.Dispositivos = append(resp.Dispositivos, ToDeviceResponse(d))
	}

	return resp
}

// ToDeviceResponse shapes a stored device for the wire.
func ToDeviceResponse(d Device) DeviceResponse {
	return DeviceResponse{
		ID:        d.ID,
		Nome:      d.Nome,
		UsuarioID: d.UserID,
	}
}

// ToDeviceResponses shapes a device collection for the wire. It always
// returns a non-nil slice so that empty collections serialize as [].
func ToDeviceResponses(devices []Device) []DeviceResponse {
	responses := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, ToDeviceResponse(d))
	}

	return responses
}
