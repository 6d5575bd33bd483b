package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"authapi/internal/domain"
)

func TestMapUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"email", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, domain.ErrDuplicateEmail},
		{"username", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, domain.ErrDuplicateUsername},
		{"wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}), domain.ErrDuplicateEmail},
		{"other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}, nil},
		{"check violation", &pgconn.PgError{Code: "23514", ConstraintName: "users_username_alnum"}, nil},
		{"plain error", errors.New("connection reset"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapUniqueViolation(tt.err))
		})
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 4)
}
