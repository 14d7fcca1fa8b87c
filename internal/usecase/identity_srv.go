package usecase

import (
	"context"
	"fmt"
	"time"

	"movietime/internal/data/entity"
	"movietime/internal/data/repository"
	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
	"movietime/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IdentityService interface {
	Register(ctx context.Context, req *request.SignupRequest) error
	Authenticate(ctx context.Context, req *request.LoginRequest) (*response.UserProjection, error)
}

type identityService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewIdentityService(users repository.UserRepository, log *zap.Logger) IdentityService {
	return &identityService{
		users: users,
		log:   log.With(zap.String("service", "identity")),
	}
}

// Register stores a new user with a bcrypt-hashed password. Returns
// ErrEmailTaken when the email is already registered.
func (s *identityService) Register(ctx context.Context, req *request.SignupRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// Authenticate checks email and password and returns the identity
// projection. The password hash never leaves this layer.
func (s *identityService) Authenticate(ctx context.Context, req *request.LoginRequest) (*response.UserProjection, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidPassword
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.UserToProjection(user), nil
}
