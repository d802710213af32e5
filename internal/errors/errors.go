// Package errors provides the application-wide sentinel errors. Domain packages
// wrap these sentinels so transport layers can map failures to status codes
// without knowing about individual domain error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across packages.
var (
	// ErrInvalidInput indicates the caller sent data that failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage indicates the persistence layer failed. It is never caused by
	// the caller's input.
	ErrStorage = errors.New("storage failure")
)

// Wrap adds context to err while keeping it in the chain. Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Storage marks err as a persistence failure, keeping both err and ErrStorage
// in the chain.
func Storage(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", message, ErrStorage, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
