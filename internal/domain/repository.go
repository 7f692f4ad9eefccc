// Package domain provides the generic owner-scoped catalog contracts shared
// by clients, products and services.
package domain

import (
	"context"

	"invoicer/internal/core/entity"
	"invoicer/internal/core/id"
)

// CatalogEntity is a validatable record that belongs to one owner.
type CatalogEntity interface {
	entity.Validatable
	entity.Owned
}

// --- Repository Interfaces ---

// CatalogRepository defines owner-scoped CRUD operations for catalog entities.
// Every method filters by owner; a record of another owner is reported as
// absent.
type CatalogRepository[T CatalogEntity] interface {
	// Create inserts a new entity and sets its ID and CreatedAt.
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID.
	GetByID(ctx context.Context, entityID, ownerID id.ID) (T, error)

	// List returns all of the owner's entities in the catalog's display order.
	List(ctx context.Context, ownerID id.ID) ([]T, error)

	// Update replaces the mutable columns. Returns the affected row count.
	Update(ctx context.Context, entity T) (int64, error)

	// Delete removes the entity. Returns the affected row count.
	Delete(ctx context.Context, entityID, ownerID id.ID) (int64, error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event, stopping at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook to run before create.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(BeforeCreate, hook)
}

// OnAfterCreate registers a hook to run after create.
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T]) {
	r.On(AfterCreate, hook)
}

// OnBeforeUpdate registers a hook to run before update.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) {
	r.On(BeforeUpdate, hook)
}
