package service

import "errors"

var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrSessionExpired   = errors.New("session expired, log in again")

	// ErrSessionNotConfirmed is returned when the backend neither confirmed
	// nor rejected the session. The session is kept.
	ErrSessionNotConfirmed = errors.New("session could not be confirmed")

	ErrIncompleteLoginResponse = errors.New("login response carries no usable session")

	ErrServerUnreachable = errors.New("server is unreachable")
	ErrInvalidRequest    = errors.New("request rejected as invalid")
	ErrAccessDenied      = errors.New("access denied")
	ErrEndpointNotFound  = errors.New("endpoint not found")
	ErrServerFailure     = errors.New("server failed to process the request")
)
