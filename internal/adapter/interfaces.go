// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the session-aware API client used to talk to the
// appybrain backend.
//
// [Client] owns the base URL and the session (access token, refresh token,
// expiry). It restores the session from a [store.KeyValueStore] on
// [Client.Init], persists it on login and refresh, serializes Get/Post calls
// through a single-worker queue and transparently refreshes the access token
// once when a request comes back 401.
//
// Failures are reported as [*TransportError] (no response was received,
// status 0) or [*HTTPError] (the backend answered with a non-2xx status).
// An *HTTPError matches the status sentinels of errors.go through
// [errors.Is], e.g. errors.Is(err, ErrUnauthorized) for a 401.
package adapter

import (
	"context"

	"github.com/MKhiriev/appybrain-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_client_mock.go -package=mock

// SessionClient is the surface of [Client] the service layer depends on.
type SessionClient interface {
	// Init sets the base URL and restores the persisted session. Only the
	// first call has any effect.
	Init(ctx context.Context, opts Options) error

	// Request performs a single request outside the queue.
	Request(ctx context.Context, endpoint string, opts RequestOptions) (models.Payload, error)

	// Get and Post run a request through the queue, strictly after every
	// previously queued call has settled.
	Get(ctx context.Context, endpoint string) (models.Payload, error)
	Post(ctx context.Context, endpoint string, body any) (models.Payload, error)

	// Login posts credentials and stores the returned session. The raw
	// response is returned for the caller to inspect.
	Login(ctx context.Context, email, password string) (models.Payload, error)

	// Logout notifies the backend and always clears the local session.
	Logout(ctx context.Context)

	// ValidateSession asks the backend whether the session is still valid.
	ValidateSession(ctx context.Context) (models.Payload, bool)

	// IsAuthenticated is a local freshness check; it performs no I/O.
	IsAuthenticated() bool

	// Session returns a copy of the session currently held in memory.
	Session() models.Session

	SaveSession(ctx context.Context, accessToken, refreshToken string, expiresAt int64)
	ClearSession(ctx context.Context)

	Close() error
}
