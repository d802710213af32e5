// Package usecase orchestrates mailing list registration: missing-field
// detection, entity construction and persistence through an injected port.
package usecase

import (
	"context"

	"github.com/allisson/mailinglist/internal/subscriber/domain"
)

// RegisterOperation is the name of the registration operation.
const RegisterOperation = "registerUserOnMailingList"

// SubscriberRepository is the persistence port used by the use case.
// Implementations must be safe for concurrent Add calls.
type SubscriberRepository interface {
	Add(ctx context.Context, user domain.UserData) error
}

// SubscriberUseCase registers people on the mailing list.
type SubscriberUseCase interface {
	// Register returns the submitted data on success. Caller errors are
	// domain.RegistrationError values; anything else is a server-side failure.
	Register(ctx context.Context, data domain.UserData) (domain.UserData, error)
}
