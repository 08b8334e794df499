package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
http:
  address: ":9090"
database:
  host: localhost
  port: 5432
  user: flights
  password: secret
  name: flights
redis:
  addr: localhost:6379
kafka:
  brokers: ["localhost:9092"]
auth:
  signing_key: 0123456789abcdef0123
  access_ttl: 10m
provider:
  type: http
  base_url: http://flights.local/api
  timeout: 2s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, 2*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "accounts.registered", cfg.Kafka.AccountsTopic)
	assert.Equal(t, "flightasset-worker", cfg.Kafka.GroupID)
	assert.Equal(t, time.Minute, cfg.Cache.FlightsTTL())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadConfig_CacheTTL(t *testing.T) {
	tests := []struct {
		name        string
		extra       string
		wantTTL     time.Duration
		wantEnabled bool
	}{
		{"omitted uses default", "", time.Minute, true},
		{"explicit zero disables", "cache:\n  flights_ttl_seconds: 0\n", 0, false},
		{"explicit value kept", "cache:\n  flights_ttl_seconds: 300\n", 5 * time.Minute, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, validYAML+tt.extra))
			require.NoError(t, err)
			require.NotNil(t, cfg.Cache.FlightsTTLSeconds)
			assert.Equal(t, tt.wantTTL, cfg.Cache.FlightsTTL())
			assert.Equal(t, tt.wantEnabled, cfg.Cache.Enabled())
		})
	}
}

func TestLoadConfig_RejectsNegativeCacheTTL(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, validYAML+"cache:\n  flights_ttl_seconds: -5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FlightsTTLSeconds")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_RejectsShortSigningKey(t *testing.T) {
	body := `
database: {host: localhost, port: 5432, user: u, name: n}
redis: {addr: localhost:6379}
kafka: {brokers: ["localhost:9092"]}
auth: {signing_key: short}
provider: {type: postgres}
`
	_, err := LoadConfig(writeConfig(t, body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SigningKey")
}

func TestLoadConfig_HTTPProviderNeedsBaseURL(t *testing.T) {
	body := `
database: {host: localhost, port: 5432, user: u, name: n}
redis: {addr: localhost:6379}
kafka: {brokers: ["localhost:9092"]}
auth: {signing_key: 0123456789abcdef}
provider: {type: http}
`
	_, err := LoadConfig(writeConfig(t, body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")
}

func TestLoadConfig_PostgresProviderWithoutURL(t *testing.T) {
	body := `
database: {host: localhost, port: 5432, user: u, name: n}
redis: {addr: localhost:6379}
kafka: {brokers: ["localhost:9092"]}
auth: {signing_key: 0123456789abcdef}
provider: {type: postgres}
`
	cfg, err := LoadConfig(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, ProviderPostgres, cfg.Provider.Type)
}

func TestDatabaseConfig_DSNAndURL(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", Name: "flights", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=app password=p@ss dbname=flights sslmode=disable", db.DSN())
	assert.Equal(t, "postgres://app:p%40ss@db:5432/flights?sslmode=disable", db.URL())
}
