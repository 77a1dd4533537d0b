package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService.
type UserService struct {
	users  ports.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(users ports.UserStore, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// CreateUser registers a new account.
func (s *UserService) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("username", u.Username))

	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "CreateUser"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return u, nil
}
