package service

import (
	"context"

	"github.com/google/uuid"

	"authapi/internal/domain"
	"authapi/internal/port"
)

// UserService exposes read access to the authenticated user's account.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}
