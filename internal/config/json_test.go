package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"version": "2.0.0"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"rate_limit_requests": 120,
			"rate_limit_window": "1m"
		},
		"storage": {
			"db": { "driver": "sqlite3", "dsn": "foods.db" }
		},
		"adapter": {
			"open_food_facts": {
				"base_url": "https://off.example.org",
				"user_agent": "agent/1.0",
				"request_timeout": "4s",
				"barcode_requests_per_window": 5,
				"search_requests_per_window": 15,
				"window": "30s",
				"breaker_failures": 2,
				"breaker_timeout": "10s"
			}
		},
		"services": {
			"local_search_limit": 20,
			"max_local_search_limit": 40,
			"external_search_limit": 5
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "2.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 120, cfg.Server.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.Server.RateLimitWindow)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "foods.db", cfg.Storage.DB.DSN)

	off := cfg.Adapter.OpenFoodFacts
	assert.Equal(t, "https://off.example.org", off.BaseURL)
	assert.Equal(t, "agent/1.0", off.UserAgent)
	assert.Equal(t, 4*time.Second, off.RequestTimeout)
	assert.Equal(t, 5, off.BarcodeRequestsPerWindow)
	assert.Equal(t, 15, off.SearchRequestsPerWindow)
	assert.Equal(t, 30*time.Second, off.Window)
	assert.Equal(t, uint32(2), off.BreakerFailures)
	assert.Equal(t, 10*time.Second, off.BreakerTimeout)

	assert.Equal(t, 20, cfg.Services.LocalSearchLimit)
	assert.Equal(t, 40, cfg.Services.MaxLocalSearchLimit)
	assert.Equal(t, 5, cfg.Services.ExternalSearchLimit)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
