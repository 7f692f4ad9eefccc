package security

import (
	"fmt"

	"invoicer/internal/core/id"
)

// Ownership modes.
const (
	ModeStrict = "strict"
	ModeLegacy = "legacy"
)

// OwnershipPolicy decides how by-id access (get, update, delete, render)
// is restricted to the caller's records. Listing and creation are always
// owner scoped regardless of the policy.
type OwnershipPolicy interface {
	// RecordScope returns the owner predicate to add to a by-id statement.
	// nil means the statement matches by id alone.
	RecordScope(ownerID id.ID) *id.ID

	// Mode returns the policy name for logging.
	Mode() string
}

// StrictPolicy only lets owners touch their own records.
// A foreign id behaves exactly like a missing one.
type StrictPolicy struct{}

// NewStrictPolicy creates the owner-scoped policy.
func NewStrictPolicy() *StrictPolicy {
	return &StrictPolicy{}
}

func (p *StrictPolicy) RecordScope(ownerID id.ID) *id.ID {
	return &ownerID
}

func (p *StrictPolicy) Mode() string {
	return ModeStrict
}

// LegacyPolicy matches records by id only, as older deployments did.
// Any authenticated caller can modify any record whose id it knows.
type LegacyPolicy struct{}

// NewLegacyPolicy creates the id-only policy.
func NewLegacyPolicy() *LegacyPolicy {
	return &LegacyPolicy{}
}

func (p *LegacyPolicy) RecordScope(id.ID) *id.ID {
	return nil
}

func (p *LegacyPolicy) Mode() string {
	return ModeLegacy
}

// PolicyForMode returns the policy for a configured mode name.
func PolicyForMode(mode string) (OwnershipPolicy, error) {
	switch mode {
	case ModeStrict, "":
		return NewStrictPolicy(), nil
	case ModeLegacy:
		return NewLegacyPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown ownership mode %q", mode)
	}
}
