package service

import (
	"context"

	"bistro-api/internal/domain"
	"bistro-api/internal/repository"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"github.com/google/uuid"
)

type userService struct {
	users  repository.UserRepository
	logger *logger.Logger
}

// NewUserService creates the user service
func NewUserService(users repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// Register upserts a user by email. The upsert is idempotent: an existing
// record is returned untouched, never overwritten, so a re-registration can
// never reset a role.
func (s *userService) Register(ctx context.Context, email, name string) (*domain.User, bool, error) {
	if email == "" {
		return nil, false, errors.NewValidationError("Email is required", nil)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, errors.NewInternalError("Failed to look up user", err)
	}
	if existing != nil {
		s.logger.WithField("email", email).Debug("User already exists")
		return existing, false, nil
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  domain.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, errors.NewInternalError("Failed to create user", err)
	}

	s.logger.WithField("email", email).Info("User registered")
	return user, true, nil
}

// List retrieves all users
func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list users", err)
	}
	return users, nil
}

// IsAdmin reports whether the user with the given email holds the admin role
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return false, errors.NewInternalError("Failed to look up user", err)
	}
	if user == nil {
		return false, nil
	}
	return user.Role == domain.RoleAdmin, nil
}

// Promote grants the admin role to the user with the given id
func (s *userService) Promote(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("User id is required", nil)
	}

	updated, err := s.users.PromoteToAdmin(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to promote user", err)
	}
	if !updated {
		return errors.NewNotFoundError("User not found")
	}

	s.logger.WithField("user_id", id).Info("User promoted to admin")
	return nil
}
