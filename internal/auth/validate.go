package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Validation errors surfaced inline by the sign-in flows. These are the
// only failures the flows produce; once validation passes, completion
// is unconditional.
var (
	ErrEmailRequired    = errors.New("please enter your email")
	ErrPasswordRequired = errors.New("please enter your password")
	ErrConfirmRequired  = errors.New("please fill in the confirm password field first")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 8 characters long and contain uppercase, lowercase, numbers, and special characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// specialChars is the accepted special-character set for the password
// strength policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// ValidEmail reports whether s looks like an email address. This is a
// syntax check only; no deliverability or ownership verification exists
// anywhere in the system.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordChecks reports which strength requirements a password meets.
type PasswordChecks struct {
	MinLength bool
	Upper     bool
	Lower     bool
	Digit     bool
	Special   bool
}

// OK reports whether every requirement is met.
func (c PasswordChecks) OK() bool {
	return c.MinLength && c.Upper && c.Lower && c.Digit && c.Special
}

// CheckPassword evaluates the strength policy: at least 8 characters
// with uppercase, lowercase, a digit, and a special character.
func CheckPassword(password string) PasswordChecks {
	checks := PasswordChecks{MinLength: len(password) >= 8}
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			checks.Upper = true
		case unicode.IsLower(r):
			checks.Lower = true
		case unicode.IsDigit(r):
			checks.Digit = true
		case strings.ContainsRune(specialChars, r):
			checks.Special = true
		}
	}
	return checks
}

// ValidateLogin checks the sign-in fields: both present, email
// well-formed. Existing passwords are not held to the strength policy.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateRegistration checks the registration fields: all present,
// email well-formed, passwords matching and meeting the strength
// policy.
func ValidateRegistration(email, password, confirm string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if strings.TrimSpace(confirm) == "" {
		return ErrConfirmRequired
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if !CheckPassword(password).OK() {
		return ErrWeakPassword
	}
	return nil
}

// ValidateReset checks the forgot-password fields; the rules are the
// same as registration with the new password in place of the original.
func ValidateReset(email, newPassword, confirm string) error {
	return ValidateRegistration(email, newPassword, confirm)
}
