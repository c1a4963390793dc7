// Package service holds the client-side use cases built on top of the
// session-aware API client: signing in and out, restoring a persisted
// session at startup and watching the session in the background.
package service

import (
	"context"

	"github.com/MKhiriev/appybrain-client/internal/workers"
	"github.com/MKhiriev/appybrain-client/models"
)

// AuthService defines the client-side contract for authentication.
type AuthService interface {
	// Login signs in with email and password. On success the session is
	// already persisted by the client; the result reports it together with
	// the backend's reset-password flag. A response with success=false is
	// reported as ErrWrongCredentials.
	Login(ctx context.Context, email, password string) (models.LoginResult, error)

	// Logout ends the session. The local session is cleared even when the
	// backend cannot be reached.
	Logout(ctx context.Context)

	// Restore confirms a persisted session with the backend and returns the
	// account behind it. ErrNotLoggedIn is returned when no session is held,
	// ErrSessionExpired when the backend rejected it and the session was
	// dropped.
	Restore(ctx context.Context) (models.AccountInfo, error)

	// Status is a local snapshot; it performs no I/O.
	Status() models.SessionStatus
}

// SessionWatchJob periodically validates the session against the backend
// and reports when it has been invalidated.
type SessionWatchJob interface {
	workers.Worker
}
