package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/utils"
	"github.com/smartfinder/smartfinder/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		// login is a GET with a JSON body
		SetAllowGetMethodPayload(true)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. On success the bearer token is extracted
// from the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Get("/login")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// Logoff implements [ServerAdapter]. The stored token is cleared regardless
// of the server's answer; the server treats a missing session the same way.
func (h *httpServerAdapter) Logoff(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/logoff")
	h.SetToken("")
	if err != nil {
		return "", fmt.Errorf("logoff request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var msg models.ResponseMessage
	if err = json.Unmarshal(resp.Body(), &msg); err != nil {
		return "", fmt.Errorf("decode logoff response: %w", err)
	}

	return msg.Mensagem, nil
}

// ActiveUser implements [ServerAdapter].
func (h *httpServerAdapter) ActiveUser(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/exibicaoUsuarioAtivo")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("active user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// RegisterUser implements [ServerAdapter].
func (h *httpServerAdapter) RegisterUser(ctx context.Context, request models.UserRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Post("/cadastroUsuario")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("/exibicaoUsuario-%d", id))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// ListUsers implements [ServerAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/exibicaoUsuarios")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.UserResponse
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode user list: %w", err)
	}

	return users, nil
}

// EditUser implements [ServerAdapter].
func (h *httpServerAdapter) EditUser(ctx context.Context, request models.UserRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Put("/edicaoUsuario")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("edit user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// RemoveUser implements [ServerAdapter].
func (h *httpServerAdapter) RemoveUser(ctx context.Context, id int64) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Delete(fmt.Sprintf("/exclusaoUsuario-%d", id))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("remove user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// ListUserDevices implements [ServerAdapter].
func (h *httpServerAdapter) ListUserDevices(ctx context.Context, id int64) ([]models.DeviceResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/exibicaoDispositivosUsuario-%d", id))
	if err != nil {
		return nil, fmt.Errorf("list user devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var devices []models.DeviceResponse
	if err = json.Unmarshal(resp.Body(), &devices); err != nil {
		return nil, fmt.Errorf("decode device list: %w", err)
	}

	return devices, nil
}

// RegisterDevice implements [ServerAdapter]. Requires a bearer token stored
// by a previous Login.
func (h *httpServerAdapter) RegisterDevice(ctx context.Context, request models.DeviceRequest) (models.DeviceResponse, error) {
	var device models.DeviceResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&device).
		Post("/cadastroDispositivo")
	if err != nil {
		return models.DeviceResponse{}, fmt.Errorf("register device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceResponse{}, err
	}

	return device, nil
}

// GetDevice implements [ServerAdapter].
func (h *httpServerAdapter) GetDevice(ctx context.Context, id int64) (models.DeviceResponse, error) {
	var device models.DeviceResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&device).
		Get(fmt.Sprintf("/exibicaoDispositivo-%d", id))
	if err != nil {
		return models.DeviceResponse{}, fmt.Errorf("get device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceResponse{}, err
	}

	return device, nil
}

// ListDevices implements [ServerAdapter].
func (h *httpServerAdapter) ListDevices(ctx context.Context) ([]models.DeviceResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/exibicaoDispositivos")
	if err != nil {
		return nil, fmt.Errorf("list devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var devices []models.DeviceResponse
	if err = json.Unmarshal(resp.Body(), &devices); err != nil {
		return nil, fmt.Errorf("decode device list: %w", err)
	}

	return devices, nil
}

// EditDevice implements [ServerAdapter].
func (h *httpServerAdapter) EditDevice(ctx context.Context, request models.DeviceEditRequest) (models.DeviceResponse, error) {
	var device models.DeviceResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&device).
		Put("/edicaoDispositivo")
	if err != nil {
		return models.DeviceResponse{}, fmt.Errorf("edit device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceResponse{}, err
	}

	return device, nil
}

// RemoveDevice implements [ServerAdapter].
func (h *httpServerAdapter) RemoveDevice(ctx context.Context, id int64) (models.DeviceResponse, error) {
	var device models.DeviceResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&device).
		Delete(fmt.Sprintf("/exclusaoDispositivo-%d", id))
	if err != nil {
		return models.DeviceResponse{}, fmt.Errorf("remove device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceResponse{}, err
	}

	return device, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
