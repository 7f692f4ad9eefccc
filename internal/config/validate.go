package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Ownership modes.
const (
	OwnershipStrict = "strict"
	OwnershipLegacy = "legacy"
)

// Sequence backends.
const (
	SequencePostgres = "postgres"
	SequenceMemory   = "memory"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.RateLimit < 0 || (c.Auth.RateLimit > 0 && c.Auth.RateBurst < 1) {
		return fmt.Errorf("auth.rate_limit must be >= 0 with rate_burst >= 1 (got %v/%d)", c.Auth.RateLimit, c.Auth.RateBurst)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	switch c.Invoice.OwnershipMode {
	case OwnershipStrict, OwnershipLegacy:
	default:
		return fmt.Errorf("invoice.ownership_mode must be %q or %q (got %q)", OwnershipStrict, OwnershipLegacy, c.Invoice.OwnershipMode)
	}

	switch c.Invoice.SequenceBackend {
	case SequencePostgres, SequenceMemory:
	default:
		return fmt.Errorf("invoice.sequence_backend must be %q or %q (got %q)", SequencePostgres, SequenceMemory, c.Invoice.SequenceBackend)
	}

	if c.Invoice.NumberPad < 0 || c.Invoice.NumberPad > 18 {
		return fmt.Errorf("invoice.number_pad must be within [0, 18] (got %d)", c.Invoice.NumberPad)
	}

	return nil
}
