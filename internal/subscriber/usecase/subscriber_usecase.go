package usecase

import (
	"context"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// subscriberUseCase holds no state between calls.
type subscriberUseCase struct {
	subscriberRepo SubscriberRepository
}

// NewSubscriberUseCase creates a SubscriberUseCase backed by repo.
func NewSubscriberUseCase(repo SubscriberRepository) SubscriberUseCase {
	return &subscriberUseCase{subscriberRepo: repo}
}

// Register checks for missing fields, builds the entity and persists it.
func (s *subscriberUseCase) Register(ctx context.Context, data domain.UserData) (domain.UserData, error) {
	if missing := domain.MissingFields(data); len(missing) > 0 {
		return domain.UserData{}, &domain.MissingParamError{Params: missing}
	}

	user, err := domain.NewUser(data)
	if err != nil {
		return domain.UserData{}, err
	}

	if err := s.subscriberRepo.Add(ctx, user.Data()); err != nil {
		if apperrors.Is(err, apperrors.ErrStorage) {
			return domain.UserData{}, err
		}
		return domain.UserData{}, apperrors.Storage(err, "failed to add subscriber")
	}

	return data, nil
}
