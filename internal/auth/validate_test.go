package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmai/taskboard/internal/auth"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.org", true},
		{"u@e.c", true},
		{"", false},
		{"plainaddress", false},
		{"missing@domain", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, auth.ValidEmail(tc.email), "email %q", tc.email)
	}
}

func TestCheckPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"meets all requirements", "Abcdef1!", true},
		{"long with symbols", `Str0ng?Pass"word`, true},
		{"too short", "Ab1!", false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no special character", "Abcdefg1", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, auth.CheckPassword(tc.password).OK())
		})
	}
}

func TestCheckPasswordReportsIndividualChecks(t *testing.T) {
	checks := auth.CheckPassword("abc1")

	assert.False(t, checks.MinLength)
	assert.False(t, checks.Upper)
	assert.True(t, checks.Lower)
	assert.True(t, checks.Digit)
	assert.False(t, checks.Special)
}

func TestValidateLogin(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"valid", "user@example.com", "anything", nil},
		{"empty email", "", "secret", auth.ErrEmailRequired},
		{"empty password", "user@example.com", "", auth.ErrPasswordRequired},
		{"empty email checked before password", "", "", auth.ErrEmailRequired},
		{"bad email format", "not-an-email", "secret", auth.ErrInvalidEmail},
		{"weak password accepted on login", "user@example.com", "123", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, auth.ValidateLogin(tc.email, tc.password), tc.want)
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		confirm  string
		want     error
	}{
		{"valid", "user@example.com", "Abcdef1!", "Abcdef1!", nil},
		{"empty email", "", "Abcdef1!", "Abcdef1!", auth.ErrEmailRequired},
		{"empty password", "user@example.com", "", "Abcdef1!", auth.ErrPasswordRequired},
		{"empty confirm", "user@example.com", "Abcdef1!", "", auth.ErrConfirmRequired},
		{"bad email", "nope", "Abcdef1!", "Abcdef1!", auth.ErrInvalidEmail},
		{"mismatch", "user@example.com", "Abcdef1!", "Abcdef2!", auth.ErrPasswordMismatch},
		{"weak password", "user@example.com", "weakpass", "weakpass", auth.ErrWeakPassword},
		{"mismatch checked before strength", "user@example.com", "weak", "weaker", auth.ErrPasswordMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, auth.ValidateRegistration(tc.email, tc.password, tc.confirm), tc.want)
		})
	}
}

func TestValidateResetMatchesRegistration(t *testing.T) {
	assert.NoError(t, auth.ValidateReset("user@example.com", "Abcdef1!", "Abcdef1!"))
	assert.ErrorIs(t, auth.ValidateReset("user@example.com", "weak", "weak"), auth.ErrWeakPassword)
}
