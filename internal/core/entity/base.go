// Package entity provides the base types shared by owner-scoped records.
package entity

import (
	"context"
	"time"

	"invoicer/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Owned is implemented by every record that belongs to one account.
type Owned interface {
	GetID() id.ID
	SetID(v id.ID)
	GetOwnerID() id.ID
	SetOwnerID(v id.ID)
	SetCreatedAt(t time.Time)
}

// OwnedEntity contains the fields every owner-scoped record carries.
// ID and CreatedAt are assigned by the database on insert.
type OwnedEntity struct {
	ID        id.ID     `db:"id" json:"id"`
	OwnerID   id.ID     `db:"owner_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GetID returns the entity id.
func (b *OwnedEntity) GetID() id.ID { return b.ID }

// SetID sets the entity id.
func (b *OwnedEntity) SetID(v id.ID) { b.ID = v }

// GetOwnerID returns the owning account id.
func (b *OwnedEntity) GetOwnerID() id.ID { return b.OwnerID }

// SetOwnerID sets the owning account id.
func (b *OwnedEntity) SetOwnerID(v id.ID) { b.OwnerID = v }

// SetCreatedAt sets the database-assigned creation time.
func (b *OwnedEntity) SetCreatedAt(t time.Time) { b.CreatedAt = t }
