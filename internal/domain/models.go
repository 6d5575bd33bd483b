package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can authenticate against the API.
type User struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	Email          string       `db:"email" json:"email"`
	Username       string       `db:"username" json:"username"`
	PasswordHash   string       `db:"password_hash" json:"-"`
	AuthProvider   AuthProvider `db:"auth_provider" json:"auth_provider"`
	ProviderUserID *string      `db:"provider_user_id" json:"-"`
	IsVerified     bool         `db:"is_verified" json:"is_verified"`
	IsActive       bool         `db:"is_active" json:"is_active"`
	PhoneNumber    *string      `db:"phone_number" json:"phone_number,omitempty"`
	Profession     *string      `db:"profession" json:"profession,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// DashboardStats holds the per-user counts shown on the dashboard.
type DashboardStats struct {
	Username       string  `db:"username" json:"username"`
	Email          string  `db:"email" json:"email"`
	Profession     *string `db:"profession" json:"profession"`
	TodosCompleted int     `db:"todos_completed" json:"todos_completed"`
	TodosPending   int     `db:"todos_pending" json:"todos_pending"`
	InventoryItems int     `db:"inventory_items" json:"inventory_items"`
}
