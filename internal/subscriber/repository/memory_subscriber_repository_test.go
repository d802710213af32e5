package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

func TestMemorySubscriberRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_KeepsInsertionOrder", func(t *testing.T) {
		repo := NewMemorySubscriberRepository()

		require.NoError(t, repo.Add(ctx, domain.UserData{Name: "First", Email: "first@mail.com"}))
		require.NoError(t, repo.Add(ctx, domain.UserData{Name: "Second", Email: "second@mail.com"}))

		assert.Equal(t, []domain.UserData{
			{Name: "First", Email: "first@mail.com"},
			{Name: "Second", Email: "second@mail.com"},
		}, repo.Users())
	})

	t.Run("Success_SeededUsersComeFirst", func(t *testing.T) {
		seed := domain.UserData{Name: "Seed", Email: "seed@mail.com"}
		repo := NewMemorySubscriberRepository(seed)

		require.NoError(t, repo.Add(ctx, domain.UserData{Name: "New", Email: "new@mail.com"}))

		users := repo.Users()
		require.Len(t, users, 2)
		assert.Equal(t, seed, users[0])
	})

	t.Run("Error_CanceledContext", func(t *testing.T) {
		repo := NewMemorySubscriberRepository()
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := repo.Add(canceled, domain.UserData{Name: "Any name", Email: "any@mail.com"})

		assert.ErrorIs(t, err, apperrors.ErrStorage)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, repo.Users())
	})
}

func TestMemorySubscriberRepository_UsersIsSnapshot(t *testing.T) {
	repo := NewMemorySubscriberRepository(domain.UserData{Name: "Seed", Email: "seed@mail.com"})

	users := repo.Users()
	users[0].Name = "Changed"

	assert.Equal(t, "Seed", repo.Users()[0].Name)
}

func TestMemorySubscriberRepository_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySubscriberRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Add(ctx, domain.UserData{
				Name:  fmt.Sprintf("User %d", i),
				Email: fmt.Sprintf("user%d@mail.com", i),
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.Users(), 50)
}

func TestMemorySubscriberRepository_Ping(t *testing.T) {
	assert.NoError(t, NewMemorySubscriberRepository().Ping(context.Background()))
}
