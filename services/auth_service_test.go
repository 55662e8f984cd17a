package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-ticketing-server/models"
)

func validSignup() SignupInput {
	return SignupInput{
		FirstName:       "Dana",
		LastName:        "Okafor",
		Phone:           "555-0142",
		Email:           "dana@example.com",
		Password:        "sturdy-passphrase",
		ConfirmPassword: "sturdy-passphrase",
	}
}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	technician, err := svc.Signup(validSignup())
	require.NoError(t, err)
	assert.NotZero(t, technician.ID)
	assert.Equal(t, "dana@example.com", technician.Email)
	assert.NotEqual(t, "sturdy-passphrase", technician.PasswordHash)

	loggedIn, err := svc.Login("dana@example.com", "sturdy-passphrase")
	require.NoError(t, err)
	assert.Equal(t, technician.ID, loggedIn.ID)
}

func TestSignupMismatchedPasswordsCreatesNothing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	input := validSignup()
	input.ConfirmPassword = "something-else"

	_, err := svc.Signup(input)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Passwords do not match.")

	var count int64
	require.NoError(t, db.Model(&models.Technician{}).Count(&count).Error)
	assert.Zero(t, count, "no partial account should be created")
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		message string
	}{
		{
			name:    "blank first name",
			mutate:  func(in *SignupInput) { in.FirstName = "  " },
			message: "First name is required.",
		},
		{
			name:    "blank email",
			mutate:  func(in *SignupInput) { in.Email = "" },
			message: "Email is required.",
		},
		{
			name:    "malformed email",
			mutate:  func(in *SignupInput) { in.Email = "not-an-address" },
			message: "Please enter a valid email address.",
		},
		{
			name:    "short password",
			mutate:  func(in *SignupInput) { in.Password = "short"; in.ConfirmPassword = "short" },
			message: "Password must be at least 8 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSignup()
			tt.mutate(&input)

			_, err := svc.Signup(input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Messages, tt.message)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(validSignup())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, err = svc.Login("dana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "sturdy-passphrase")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBlankFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Login("", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
}
