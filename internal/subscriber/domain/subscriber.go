// Package domain defines the mailing list subscriber entity, its validation
// rules and the typed errors produced when a registration is rejected.
package domain

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/mailinglist/internal/validation"
)

// MinNameLength is the smallest accepted name length after trimming.
const MinNameLength = 2

// UserData is the raw name/email pair submitted for registration.
type UserData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is a validated subscriber. The zero value is not valid; use NewUser.
type User struct {
	data UserData
}

// ValidateName fails with *InvalidNameError when name is empty or shorter than
// MinNameLength once surrounding whitespace is removed.
func ValidateName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		appValidation.TrimmedLength{Min: MinNameLength},
	)
	if err != nil {
		return &InvalidNameError{Name: name}
	}
	return nil
}

// ValidateEmail fails with *InvalidEmailError unless email looks like local@domain.tld.
func ValidateEmail(email string) error {
	err := validation.Validate(email,
		validation.Required,
		appValidation.Email,
	)
	if err != nil {
		return &InvalidEmailError{Email: email}
	}
	return nil
}

// NewUser validates data and returns the entity. The name is checked first and
// its error is returned without looking at the email.
func NewUser(data UserData) (*User, error) {
	if err := ValidateName(data.Name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(data.Email); err != nil {
		return nil, err
	}
	return &User{data: data}, nil
}

// Name returns the subscriber name as submitted.
func (u *User) Name() string { return u.data.Name }

// Email returns the subscriber email as submitted.
func (u *User) Email() string { return u.data.Email }

// Data returns a copy of the underlying name/email pair.
func (u *User) Data() UserData { return u.data }

// MissingFields returns the names of empty fields in data, name before email.
func MissingFields(data UserData) []string {
	var missing []string
	if data.Name == "" {
		missing = append(missing, "name")
	}
	if data.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}
