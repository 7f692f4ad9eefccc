package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/numerator"
	"invoicer/internal/core/security"
	"invoicer/internal/core/tx"
	"invoicer/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	BcryptCost int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{BcryptCost: bcrypt.DefaultCost}
}

// Service provides registration, login and current-account lookup.
type Service struct {
	userRepo   UserRepository
	sequences  numerator.Store
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(
	userRepo UserRepository,
	sequences numerator.Store,
	txManager tx.Manager,
	jwtService *JWTService,
	config ServiceConfig,
) *Service {
	if txManager == nil {
		txManager = tx.NoopManager{}
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		sequences:  sequences,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// Register creates an account, seeds its invoice sequence and issues a token.
// The user row and the sequence row are written in one transaction.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	user := &User{
		Name:  req.Name,
		Email: NormalizeEmail(req.Email),
	}
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, apperror.NewRequiredField("password")
	}

	exists, err := s.userRepo.Exists(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewDuplicate("user", "email", user.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("hash password: %w", err))
	}
	user.PasswordHash = string(hash)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return s.sequences.Ensure(ctx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user registered", "user_id", user.ID)

	return &Session{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	email := NormalizeEmail(creds.Email)
	if email == "" {
		return nil, apperror.NewRequiredField("email")
	}
	if creds.Password == "" {
		return nil, apperror.NewRequiredField("password")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		logger.Debug(ctx, "login rejected", "user_id", user.ID)
		return nil, apperror.NewUnauthorized("invalid email or password")
	}

	token, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &Session{User: user, Token: token}, nil
}

// Me returns the authenticated account.
func (s *Service) Me(ctx context.Context) (*User, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, ownerID)
}
