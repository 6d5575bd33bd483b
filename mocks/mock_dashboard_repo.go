package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authapi/internal/domain"
)

// MockDashboardRepo is a mock implementation of port.DashboardRepository.
type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) GetUserStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
