// Package config loads service configuration from YAML and environment.
package config

import (
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Invoice  InvoiceConfig  `yaml:"invoice"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
	Compression     bool          `yaml:"compression"      env:"SERVER_COMPRESSION"      env-default:"true"`
	GinMode         string        `yaml:"gin_mode"         env:"GIN_MODE"                env-default:"release"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"JWT_ISSUER"       env-default:"invoicer"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"JWT_ACCESS_TTL"   env-default:"24h"`
	CookieName     string        `yaml:"cookie_name"      env:"AUTH_COOKIE_NAME" env-default:"token"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST" env-default:"10"`
	// RateLimit is requests per second per client IP on login/register; 0 disables.
	RateLimit float64 `yaml:"rate_limit" env:"AUTH_RATE_LIMIT" env-default:"5"`
	RateBurst int     `yaml:"rate_burst" env:"AUTH_RATE_BURST" env-default:"10"`
}

// InvoiceConfig holds invoice numbering and ownership settings.
type InvoiceConfig struct {
	// OwnershipMode is "strict" (owner-scoped update/delete) or "legacy" (id only).
	OwnershipMode string `yaml:"ownership_mode" env:"INVOICE_OWNERSHIP_MODE" env-default:"strict"`
	NumberPrefix  string `yaml:"number_prefix"  env:"INVOICE_NUMBER_PREFIX"`
	NumberPad     int    `yaml:"number_pad"     env:"INVOICE_NUMBER_PAD"     env-default:"0"`
	// SequenceBackend is "postgres" or "memory".
	SequenceBackend string `yaml:"sequence_backend" env:"INVOICE_SEQUENCE_BACKEND" env-default:"postgres"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `yaml:"level"       env:"LOG_LEVEL"       env-default:"info"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
	Encoding    string `yaml:"encoding"    env:"LOG_ENCODING"`
}
