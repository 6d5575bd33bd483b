package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"authapi/internal/domain"
	"authapi/internal/port"
)

type dashboardRepo struct {
	db *sqlx.DB
}

// NewDashboardRepo creates a new PostgreSQL-backed DashboardRepository.
func NewDashboardRepo(db *sqlx.DB) port.DashboardRepository {
	return &dashboardRepo{db: db}
}

const userDashboardQuery = `SELECT
	u.username,
	u.email,
	u.profession,
	(SELECT COUNT(*) FROM todos t WHERE t.owner_id = u.id AND t.is_completed) AS todos_completed,
	(SELECT COUNT(*) FROM todos t WHERE t.owner_id = u.id AND NOT t.is_completed) AS todos_pending,
	(SELECT COUNT(*) FROM inventory_items i WHERE i.owner_id = u.id) AS inventory_items
FROM users u WHERE u.id = $1`

func (r *dashboardRepo) GetUserStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, userDashboardQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("dashboardRepo.GetUserStats: %w", err)
	}
	return &stats, nil
}
