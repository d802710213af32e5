package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/mailinglist/internal/errors"
	"github.com/allisson/mailinglist/internal/metrics"
	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// subscriberUseCaseWithMetrics decorates SubscriberUseCase with metrics instrumentation.
type subscriberUseCaseWithMetrics struct {
	next    SubscriberUseCase
	metrics metrics.BusinessMetrics
}

// NewSubscriberUseCaseWithMetrics wraps a SubscriberUseCase with metrics recording.
func NewSubscriberUseCaseWithMetrics(useCase SubscriberUseCase, m metrics.BusinessMetrics) SubscriberUseCase {
	return &subscriberUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for registration attempts. Rejected input counts as
// "rejected" so it can be told apart from server-side errors.
func (s *subscriberUseCaseWithMetrics) Register(
	ctx context.Context,
	data domain.UserData,
) (domain.UserData, error) {
	start := time.Now()
	result, err := s.next.Register(ctx, data)

	status := "success"
	if err != nil {
		var regErr domain.RegistrationError
		if apperrors.As(err, &regErr) {
			status = "rejected"
		} else {
			status = "error"
		}
	}

	s.metrics.RecordOperation(ctx, "subscribers", "subscriber_register", status)
	s.metrics.RecordDuration(ctx, "subscribers", "subscriber_register", time.Since(start), status)

	return result, err
}
