// Package repository provides persistence adapters for mailing list subscribers.
package repository

import (
	"context"
	"sync"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// MemorySubscriberRepository keeps subscribers in process memory, in the order
// they were added. It is safe for concurrent use.
type MemorySubscriberRepository struct {
	mu    sync.RWMutex
	users []domain.UserData
}

// NewMemorySubscriberRepository creates a repository seeded with users.
func NewMemorySubscriberRepository(users ...domain.UserData) *MemorySubscriberRepository {
	return &MemorySubscriberRepository{
		users: append([]domain.UserData(nil), users...),
	}
}

// Add appends user. It fails only when ctx is already done.
func (r *MemorySubscriberRepository) Add(ctx context.Context, user domain.UserData) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Storage(err, "failed to add subscriber")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	return nil
}

// Ping always succeeds.
func (r *MemorySubscriberRepository) Ping(ctx context.Context) error {
	return nil
}

// Users returns a snapshot of the stored subscribers in insertion order.
func (r *MemorySubscriberRepository) Users() []domain.UserData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.UserData, len(r.users))
	copy(out, r.users)
	return out
}
