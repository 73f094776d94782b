package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/auth"
	"github.com/lmai/taskboard/internal/model"
)

func newInstantAuthenticator() *auth.Authenticator {
	return auth.New(model.AuthConfig{})
}

func TestLoginCompletesAfterDelay(t *testing.T) {
	a := newInstantAuthenticator()

	done, err := a.Login("user@example.com", "anything")
	require.NoError(t, err)
	require.NotNil(t, done)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("login completion never fired")
	}
}

func TestLoginValidationFailureReturnsNoChannel(t *testing.T) {
	a := newInstantAuthenticator()

	done, err := a.Login("", "secret")
	assert.ErrorIs(t, err, auth.ErrEmailRequired)
	assert.Nil(t, done)
}

func TestRegisterValidatesBeforeCompleting(t *testing.T) {
	a := newInstantAuthenticator()

	_, err := a.Register("user@example.com", "weak", "weak")
	assert.ErrorIs(t, err, auth.ErrWeakPassword)

	done, err := a.Register("user@example.com", "Abcdef1!", "Abcdef1!")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("registration completion never fired")
	}
}

func TestResetPasswordValidatesBeforeCompleting(t *testing.T) {
	a := newInstantAuthenticator()

	_, err := a.ResetPassword("user@example.com", "Abcdef1!", "Abcdef2!")
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)

	done, err := a.ResetPassword("user@example.com", "Abcdef1!", "Abcdef1!")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reset completion never fired")
	}
}

func TestConfiguredDelayIsHonored(t *testing.T) {
	a := auth.New(model.AuthConfig{LoginDelayMs: 50})

	start := time.Now()
	done, err := a.Login("user@example.com", "secret")
	require.NoError(t, err)

	<-done
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
