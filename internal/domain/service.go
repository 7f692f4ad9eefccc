package domain

import (
	"context"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/core/security"
	"invoicer/internal/core/tx"
	"invoicer/pkg/logger"
)

// CatalogService provides owner-scoped business logic for catalog entities.
// The owner always comes from the request context, never from the payload.
type CatalogService[T CatalogEntity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T CatalogEntity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T CatalogEntity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	txm := cfg.TxManager
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  txm,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the catalog's entity name used in errors and routes.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, entityID id.ID) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, entityID)
	}
	return err
}

// Create validates entity, assigns the current owner and stores it.
func (s *CatalogService[T]) Create(ctx context.Context, entity T) (id.ID, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return id.Nil(), err
	}
	entity.SetOwnerID(ownerID)

	// 1. Run before-create hooks (normalization)
	if err := s.hooks.Run(ctx, BeforeCreate, entity); err != nil {
		return id.Nil(), err
	}

	// 2. Validate entity invariants
	if err := entity.Validate(ctx); err != nil {
		return id.Nil(), s.normalizeValidationErr(err)
	}

	// 3. Create in transaction
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, entity)
	})
	if err != nil {
		return id.Nil(), err
	}

	// 4. Run after-create hooks (outside transaction)
	if err := s.hooks.Run(ctx, AfterCreate, entity); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return entity.GetID(), nil
}

// GetByID retrieves one of the owner's entities.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	var zero T
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return zero, err
	}
	entity, err := s.repo.GetByID(ctx, entityID, ownerID)
	if err != nil {
		return zero, s.normalizeGetErr(err, entityID)
	}
	return entity, nil
}

// List returns all of the owner's entities.
func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ownerID)
}

// Update replaces an existing entity. entity must carry the target ID.
func (s *CatalogService[T]) Update(ctx context.Context, entity T) error {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return err
	}
	entity.SetOwnerID(ownerID)

	if err := s.hooks.Run(ctx, BeforeUpdate, entity); err != nil {
		return err
	}
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	var affected int64
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.Update(ctx, entity)
		affected = n
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound(s.entityName, entity.GetID())
	}
	return nil
}

// Delete removes one of the owner's entities.
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID) error {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, entityID, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound(s.entityName, entityID)
	}

	logger.Info(ctx, "catalog entity deleted", "entity", s.entityName, "id", entityID)
	return nil
}
