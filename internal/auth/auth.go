// Package auth implements the simulated authentication flows: purely
// local field validation followed by an unconditional success after a
// cosmetic delay. No credentials are verified and no session or token
// is issued.
package auth

import (
	"time"

	"github.com/lmai/taskboard/internal/model"
)

// Authenticator runs the simulated sign-in, registration, and
// password-reset flows.
type Authenticator struct {
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	ResetDelay    time.Duration
}

// New builds an Authenticator from the configured delays.
func New(cfg model.AuthConfig) *Authenticator {
	return &Authenticator{
		LoginDelay:    time.Duration(cfg.LoginDelayMs) * time.Millisecond,
		RegisterDelay: time.Duration(cfg.RegisterDelayMs) * time.Millisecond,
		ResetDelay:    time.Duration(cfg.ResetDelayMs) * time.Millisecond,
	}
}

// Login validates the fields and, on success, returns a channel that
// closes once the simulated sign-in completes. The completion cannot be
// cancelled; a caller that navigates away may simply abandon the
// channel.
func (a *Authenticator) Login(email, password string) (<-chan struct{}, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}
	return after(a.LoginDelay), nil
}

// Register validates the fields and, on success, returns a channel that
// closes once the simulated registration completes.
func (a *Authenticator) Register(email, password, confirm string) (<-chan struct{}, error) {
	if err := ValidateRegistration(email, password, confirm); err != nil {
		return nil, err
	}
	return after(a.RegisterDelay), nil
}

// ResetPassword validates the fields and, on success, returns a channel
// that closes once the simulated reset completes.
func (a *Authenticator) ResetPassword(email, newPassword, confirm string) (<-chan struct{}, error) {
	if err := ValidateReset(email, newPassword, confirm); err != nil {
		return nil, err
	}
	return after(a.ResetDelay), nil
}

// after returns a channel closed by a one-shot timer. No handle is
// retained, so abandoning the channel requires no cleanup.
func after(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	time.AfterFunc(d, func() { close(done) })
	return done
}
