// Package catalog_repo provides PostgreSQL implementations for the owner-scoped
// catalogs (clients, products, services).
package catalog_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/domain"
	"invoicer/internal/infrastructure/storage/postgres"
)

// Columns the database assigns or that never change after insert.
var immutableCols = []string{"id", "owner_id", "created_at"}

// BaseCatalogRepo provides owner-scoped CRUD operations for catalog entities.
// Embed this in specific catalog repositories.
type BaseCatalogRepo[T domain.CatalogEntity] struct {
	db         postgres.QuerierProvider
	tableName  string
	entityName string
	selectCols []string
	orderBy    []string
	newFn      func() T
}

// NewBaseCatalogRepo creates a new base catalog repository.
func NewBaseCatalogRepo[T domain.CatalogEntity](
	db postgres.QuerierProvider,
	tableName string,
	entityName string,
	selectCols []string,
	orderBy []string,
	newFn func() T,
) *BaseCatalogRepo[T] {
	return &BaseCatalogRepo[T]{
		db:         db,
		tableName:  tableName,
		entityName: entityName,
		selectCols: selectCols,
		orderBy:    orderBy,
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// mutableData returns the entity's column values without immutable columns.
func (r *BaseCatalogRepo[T]) mutableData(entity T) (map[string]any, error) {
	data := postgres.StructToMap(entity, immutableCols...)
	if len(data) == 0 {
		return nil, fmt.Errorf("no db tags found in entity")
	}

	// Filter to only include columns that exist in DB
	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}
	return filtered, nil
}

// Create inserts a new entity and sets the generated id and created_at.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	data, err := r.mutableData(entity)
	if err != nil {
		return err
	}
	data["owner_id"] = entity.GetOwnerID()

	sql, args, err := r.Builder().
		Insert(r.tableName).
		SetMap(data).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	var (
		newID     id.ID
		createdAt time.Time
	)
	if err := r.db.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&newID, &createdAt); err != nil {
		return postgres.MapError(err, r.entityName)
	}
	entity.SetID(newID)
	entity.SetCreatedAt(createdAt)
	return nil
}

// baseSelect creates a SELECT builder restricted to one owner.
func (r *BaseCatalogRepo[T]) baseSelect(ownerID id.ID) squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"owner_id": ownerID})
}

// GetByID retrieves entity by ID.
func (r *BaseCatalogRepo[T]) GetByID(ctx context.Context, entityID, ownerID id.ID) (T, error) {
	entity := r.newFn()

	sql, args, err := r.baseSelect(ownerID).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.entityName, entityID)
		}
		return entity, postgres.MapError(err, r.entityName)
	}
	return entity, nil
}

// List returns all of the owner's entities in the repository's order.
func (r *BaseCatalogRepo[T]) List(ctx context.Context, ownerID id.ID) ([]T, error) {
	sql, args, err := r.baseSelect(ownerID).
		OrderBy(r.orderBy...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]T, 0)
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, r.entityName)
	}
	return items, nil
}

// Update replaces the mutable columns of the owner's entity.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) (int64, error) {
	data, err := r.mutableData(entity)
	if err != nil {
		return 0, err
	}

	sql, args, err := r.Builder().
		Update(r.tableName).
		SetMap(data).
		Where(squirrel.Eq{"id": entity.GetID()}).
		Where(squirrel.Eq{"owner_id": entity.GetOwnerID()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.entityName)
	}
	return tag.RowsAffected(), nil
}

// Delete physically removes the owner's entity.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, entityID, ownerID id.ID) (int64, error) {
	sql, args, err := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, r.entityName)
	}
	return tag.RowsAffected(), nil
}
