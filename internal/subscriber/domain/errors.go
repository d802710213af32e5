package domain

import (
	"encoding/json"
	"strings"

	apperrors "github.com/allisson/mailinglist/internal/errors"
)

// ErrorKind tags the closed set of registration failures a caller can fix.
type ErrorKind int

// Registration error kinds.
const (
	KindMissingParam ErrorKind = iota + 1
	KindInvalidName
	KindInvalidEmail
)

// String returns the error type name used in response bodies.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingParam:
		return "MissingParamError"
	case KindInvalidName:
		return "InvalidNameError"
	case KindInvalidEmail:
		return "InvalidEmailError"
	default:
		return "UnknownError"
	}
}

// RegistrationError is implemented only by the error types of this package.
// Every RegistrationError unwraps to errors.ErrInvalidInput.
type RegistrationError interface {
	error
	Kind() ErrorKind
	registrationError()
}

// errorBody is the JSON shape of a RegistrationError.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func marshalRegistrationError(err RegistrationError) ([]byte, error) {
	return json.Marshal(errorBody{Error: err.Kind().String(), Message: err.Error()})
}

// InvalidNameError reports a name that failed validation.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return "Invalid name: " + e.Name + "."
}

// Kind implements RegistrationError.
func (e *InvalidNameError) Kind() ErrorKind { return KindInvalidName }

// Unwrap lets errors.Is match errors.ErrInvalidInput.
func (e *InvalidNameError) Unwrap() error { return apperrors.ErrInvalidInput }

// MarshalJSON implements json.Marshaler.
func (e *InvalidNameError) MarshalJSON() ([]byte, error) { return marshalRegistrationError(e) }

func (e *InvalidNameError) registrationError() {}

// InvalidEmailError reports an email that failed validation.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return "Invalid email: " + e.Email + "."
}

// Kind implements RegistrationError.
func (e *InvalidEmailError) Kind() ErrorKind { return KindInvalidEmail }

// Unwrap lets errors.Is match errors.ErrInvalidInput.
func (e *InvalidEmailError) Unwrap() error { return apperrors.ErrInvalidInput }

// MarshalJSON implements json.Marshaler.
func (e *InvalidEmailError) MarshalJSON() ([]byte, error) { return marshalRegistrationError(e) }

func (e *InvalidEmailError) registrationError() {}

// MissingParamError lists the request fields that were absent, in field order.
type MissingParamError struct {
	Params []string
}

func (e *MissingParamError) Error() string {
	return "Missing parameter from request: " + strings.Join(e.Params, " ") + "."
}

// Kind implements RegistrationError.
func (e *MissingParamError) Kind() ErrorKind { return KindMissingParam }

// Unwrap lets errors.Is match errors.ErrInvalidInput.
func (e *MissingParamError) Unwrap() error { return apperrors.ErrInvalidInput }

// MarshalJSON implements json.Marshaler.
func (e *MissingParamError) MarshalJSON() ([]byte, error) { return marshalRegistrationError(e) }

func (e *MissingParamError) registrationError() {}
