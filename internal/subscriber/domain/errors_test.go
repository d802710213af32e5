package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mailinglist/internal/errors"
)

func TestRegistrationErrors_Messages(t *testing.T) {
	tests := []struct {
		name    string
		err     RegistrationError
		message string
		kind    ErrorKind
	}{
		{
			name:    "invalid name",
			err:     &InvalidNameError{Name: "A"},
			message: "Invalid name: A.",
			kind:    KindInvalidName,
		},
		{
			name:    "invalid email",
			err:     &InvalidEmailError{Email: "invalid_mail.com"},
			message: "Invalid email: invalid_mail.com.",
			kind:    KindInvalidEmail,
		},
		{
			name:    "missing name",
			err:     &MissingParamError{Params: []string{"name"}},
			message: "Missing parameter from request: name.",
			kind:    KindMissingParam,
		},
		{
			name:    "missing email",
			err:     &MissingParamError{Params: []string{"email"}},
			message: "Missing parameter from request: email.",
			kind:    KindMissingParam,
		},
		{
			name:    "missing both",
			err:     &MissingParamError{Params: []string{"name", "email"}},
			message: "Missing parameter from request: name email.",
			kind:    KindMissingParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.ErrorIs(t, tt.err, apperrors.ErrInvalidInput)
		})
	}
}

func TestRegistrationErrors_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(&MissingParamError{Params: []string{"name", "email"}})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"error":"MissingParamError","message":"Missing parameter from request: name email."}`,
		string(body),
	)

	body, err = json.Marshal(&InvalidNameError{Name: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"InvalidNameError","message":"Invalid name: A."}`, string(body))

	body, err = json.Marshal(&InvalidEmailError{Email: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"InvalidEmailError","message":"Invalid email: x."}`, string(body))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "MissingParamError", KindMissingParam.String())
	assert.Equal(t, "InvalidNameError", KindInvalidName.String())
	assert.Equal(t, "InvalidEmailError", KindInvalidEmail.String())
	assert.Equal(t, "UnknownError", ErrorKind(0).String())
}
