package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "key",
			TokenIssuer:   "smartfinder",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/smartfinder"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestBuild_MergesEarlierSourcesFirst(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:9999", RequestTimeout: time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// earlier non-zero values win, later sources only fill gaps
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestBuild_PropagatesAccumulatedError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing server address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(c *StructuredConfig) { c.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithJSON_MergesFileValues(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"token_sign_key": "from-json", "token_issuer": "smartfinder", "token_duration": "2h"},
		"storage": {"db": {"driver": "sqlite3", "dsn": "smartfinder.db"}},
		"server": {"http_address": "localhost:8081", "request_timeout": "15s"}
	}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(body), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	b = b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestWithJSON_MissingFileAccumulatesError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b = b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())
	b = b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
