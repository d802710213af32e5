package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// PostgreSQLSubscriberRepository handles subscriber persistence for PostgreSQL
type PostgreSQLSubscriberRepository struct {
	db *sql.DB
}

// NewPostgreSQLSubscriberRepository creates a new PostgreSQLSubscriberRepository
func NewPostgreSQLSubscriberRepository(db *sql.DB) *PostgreSQLSubscriberRepository {
	return &PostgreSQLSubscriberRepository{
		db: db,
	}
}

// Add inserts a subscriber row with a fresh UUIDv7 id.
func (r *PostgreSQLSubscriberRepository) Add(ctx context.Context, user domain.UserData) error {
	query := `INSERT INTO subscribers (id, name, email, created_at)
			  VALUES ($1, $2, $3, NOW())`

	_, err := r.db.ExecContext(ctx, query, uuid.Must(uuid.NewV7()), user.Name, user.Email)
	if err != nil {
		return apperrors.Storage(err, "failed to add subscriber")
	}
	return nil
}

// Ping checks the database connection.
func (r *PostgreSQLSubscriberRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return apperrors.Storage(err, "failed to ping postgresql")
	}
	return nil
}
