package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFromRequest(t *testing.T) {
	user := UserFromRequest(UserRequest{
		Login: "joao",
		Senha: "segredo",
		Cpf:   "12345678901",
		Email: "joao@example.com",
	})

	assert.Zero(t, user.ID, "requests never carry an id")
	assert.Equal(t, "joao", user.Login)
	assert.Equal(t, "segredo", user.Senha)
	assert.Equal(t, "12345678901", user.Cpf)
	assert.Equal(t, "joao@example.com", user.Email)
}

func TestDeviceFromRequest(t *testing.T) {
	device := DeviceFromRequest(DeviceRequest{Nome: "rastreador"})

	assert.Zero(t, device.ID)
	assert.Zero(t, device.UserID, "the owner is assigned by the service, not the payload")
	assert.Equal(t, "rastreador", device.Nome)
}

func TestToUserResponse(t *testing.T) {
	user := User{ID: 7, Login: "joao", Senha: "$2a$10$digest", Cpf: "12345678901", Email: "joao@example.com"}
	devices := []Device{
		{ID: 1, Nome: "rastreador", UserID: 7},
		{ID: 2, Nome: "coleira", UserID: 7},
	}

	resp := ToUserResponse(user, devices)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "joao", resp.Login)
	assert.Equal(t, "12345678901", resp.Cpf)
	assert.Equal(t, "joao@example.com", resp.Email)
	require.Len(t, resp.Dispositivos, 2)
	assert.Equal(t, "rastreador", resp.Dispositivos[0].Nome)
	assert.Equal(t, int64(7), resp.Dispositivos[1].UsuarioID)
}

func TestToUserResponse_RedactsPasswordDigest(t *testing.T) {
	resp := ToUserResponse(User{ID: 7, Login: "joao", Senha: "$2a$10$digest"}, nil)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "digest")
	assert.NotContains(t, string(body), "senha")
}

func TestToUserResponse_NoDevicesSerializesAsEmptyList(t *testing.T) {
	resp := ToUserResponse(User{ID: 7}, nil)

	require.NotNil(t, resp.Dispositivos)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"dispositivos":[]`)
}

func TestToDeviceResponse(t *testing.T) {
	resp := ToDeviceResponse(Device{ID: 3, Nome: "rastreador", UserID: 7})

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "rastreador", resp.Nome)
	assert.Equal(t, int64(7), resp.UsuarioID)
}

func TestToDeviceResponse_DetachedOwnerOmitted(t *testing.T) {
	body, err := json.Marshal(ToDeviceResponse(Device{ID: 3, Nome: "rastreador"}))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "usuario_id")
}

func TestToDeviceResponses(t *testing.T) {
	responses := ToDeviceResponses([]Device{
		{ID: 1, Nome: "rastreador", UserID: 7},
		{ID: 2, Nome: "coleira", UserID: 8},
	})

	require.Len(t, responses, 2)
	assert.Equal(t, int64(7), responses[0].UsuarioID)
	assert.Equal(t, "coleira", responses[1].Nome)
}

func TestToDeviceResponses_NilInputYieldsEmptyList(t *testing.T) {
	responses := ToDeviceResponses(nil)

	require.NotNil(t, responses)
	assert.Empty(t, responses)

	body, err := json.Marshal(responses)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
