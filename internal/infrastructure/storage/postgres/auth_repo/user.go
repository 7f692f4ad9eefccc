// Package auth_repo provides the PostgreSQL user repository.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/domain/auth"
	"invoicer/internal/infrastructure/storage/postgres"
)

const usersTable = "users"

var _ auth.UserRepository = (*UserRepo)(nil)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	db         postgres.QuerierProvider
	selectCols []string
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db postgres.QuerierProvider) *UserRepo {
	return &UserRepo{
		db:         db,
		selectCols: postgres.ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a user and sets the generated id and created_at.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	sql, args, err := r.builder().
		Insert(usersTable).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.db.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		return postgres.MapError(err, "user")
	}
	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID}, userID)
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

func (r *UserRepo) getOne(ctx context.Context, where squirrel.Eq, key any) (*auth.User, error) {
	sql, args, err := r.builder().
		Select(r.selectCols...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", key)
		}
		return nil, postgres.MapError(err, "user")
	}
	return &user, nil
}

// Exists checks if email is already registered.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetQuerier(ctx).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user")
	}
	return exists, nil
}
