package port

import (
	"context"

	"github.com/google/uuid"

	"authapi/internal/domain"
)

// UserRepository defines the contract for the credential store.
// Email and username uniqueness is enforced by the store itself; Create
// reports violations as domain.ErrDuplicateEmail or domain.ErrDuplicateUsername.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	SetVerified(ctx context.Context, userID uuid.UUID) error
}

// DashboardRepository provides per-user aggregate counts.
type DashboardRepository interface {
	GetUserStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
}
