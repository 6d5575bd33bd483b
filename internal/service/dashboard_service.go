package service

import (
	"context"

	"github.com/google/uuid"

	"authapi/internal/domain"
	"authapi/internal/port"
	"authapi/internal/report"
)

// DashboardService provides per-user aggregate counts.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
	ExportDashboard(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type dashboardService struct {
	repo port.DashboardRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(repo port.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	return s.repo.GetUserStats(ctx, userID)
}

func (s *dashboardService) ExportDashboard(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return report.DashboardXLSX(stats)
}
