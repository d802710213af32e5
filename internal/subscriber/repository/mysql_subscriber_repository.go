package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// MySQLSubscriberRepository handles subscriber persistence for MySQL
type MySQLSubscriberRepository struct {
	db *sql.DB
}

// NewMySQLSubscriberRepository creates a new MySQLSubscriberRepository
func NewMySQLSubscriberRepository(db *sql.DB) *MySQLSubscriberRepository {
	return &MySQLSubscriberRepository{
		db: db,
	}
}

// Add inserts a subscriber row. The id is stored as BINARY(16).
func (r *MySQLSubscriberRepository) Add(ctx context.Context, user domain.UserData) error {
	query := `INSERT INTO subscribers (id, name, email, created_at)
			  VALUES (?, ?, ?, NOW())`

	id := uuid.Must(uuid.NewV7())
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = r.db.ExecContext(ctx, query, uuidBytes, user.Name, user.Email)
	if err != nil {
		return apperrors.Storage(err, "failed to add subscriber")
	}
	return nil
}

// Ping checks the database connection.
func (r *MySQLSubscriberRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return apperrors.Storage(err, "failed to ping mysql")
	}
	return nil
}
