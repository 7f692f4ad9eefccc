package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "this-is-a-very-long-jwt-secret-for-testing-32+"

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/invoicer")
	t.Setenv("JWT_SECRET", testSecret)
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EnvDefaults(t *testing.T) {
	validEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, OwnershipStrict, cfg.Invoice.OwnershipMode)
	assert.Equal(t, SequencePostgres, cfg.Invoice.SequenceBackend)
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	validEnv(t)
	path := writeYAML(t, `
server:
  port: 9090
database:
  dsn: "postgres://yaml@localhost/db"
auth:
  jwt_secret: "`+testSecret+`"
invoice:
  ownership_mode: legacy
  number_prefix: "INV-"
  number_pad: 5
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, OwnershipLegacy, cfg.Invoice.OwnershipMode)
	assert.Equal(t, "INV-", cfg.Invoice.NumberPrefix)
	assert.Equal(t, 5, cfg.Invoice.NumberPad)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:  ServerConfig{Port: 8080},
			Auth:    AuthConfig{JWTSecret: testSecret, BcryptCost: 10},
			Invoice: InvoiceConfig{OwnershipMode: OwnershipStrict, SequenceBackend: SequenceMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"bad ownership", func(c *Config) { c.Invoice.OwnershipMode = "open" }, true},
		{"bad backend", func(c *Config) { c.Invoice.SequenceBackend = "redis" }, true},
		{"bad cost", func(c *Config) { c.Auth.BcryptCost = 99 }, true},
		{"negative pad", func(c *Config) { c.Invoice.NumberPad = -1 }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"rate without burst", func(c *Config) { c.Auth.RateLimit = 5 }, true},
		{"negative rate", func(c *Config) { c.Auth.RateLimit = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
