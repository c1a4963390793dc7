// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/internal/mock"
	"github.com/MKhiriev/appybrain-client/models"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockSessionClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	return NewAuthService(client, nil), client
}

var testSession = models.Session{AccessToken: "A", RefreshToken: "R", ExpiresAt: 1700000000000}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, client := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().Login(ctx, "u@x.com", "pw").
			Return(models.NewPayload([]byte(`{"success":true,"accessToken":"A","refreshToken":"R","expiresAt":1700000000000,"resetPassword":true}`)), nil),
		client.EXPECT().Session().Return(testSession),
	)

	result, err := svc.Login(ctx, "u@x.com", "pw")

	require.NoError(t, err)
	assert.True(t, result.ResetPassword)
	assert.Equal(t, testSession, result.Session)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	svc, client := newTestAuthSvc(t)

	client.EXPECT().Login(gomock.Any(), "u@x.com", "bad").
		Return(models.NewPayload([]byte(`{"success":false,"message":"wrong password"}`)), nil)

	_, err := svc.Login(context.Background(), "u@x.com", "bad")

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_IncompleteResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		session models.Session
		calls   int
	}{
		{name: "raw body", body: "ok", calls: 0},
		{name: "no session stored", body: `{"success":true,"accessToken":"A"}`, calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newTestAuthSvc(t)

			client.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.NewPayload([]byte(tt.body)), nil)
			client.EXPECT().Session().Return(tt.session).Times(tt.calls)

			_, err := svc.Login(context.Background(), "u@x.com", "pw")

			assert.ErrorIs(t, err, ErrIncompleteLoginResponse)
		})
	}
}

func TestAuthService_Login_AdapterErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"unreachable", &adapter.TransportError{Cause: errors.New("refused")}, ErrServerUnreachable},
		{"server failure", &adapter.HTTPError{Status: 500}, ErrServerFailure},
		{"bad request", &adapter.HTTPError{Status: 400}, ErrInvalidRequest},
		{"not initialized", adapter.ErrNotInitialized, adapter.ErrNotInitialized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newTestAuthSvc(t)

			client.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Payload{}, tt.err)

			_, err := svc.Login(context.Background(), "u@x.com", "pw")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	svc, client := newTestAuthSvc(t)
	ctx := context.Background()

	client.EXPECT().Logout(ctx)

	svc.Logout(ctx)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestAuthService_Restore_NoSession(t *testing.T) {
	svc, client := newTestAuthSvc(t)

	client.EXPECT().Session().Return(models.Session{})

	_, err := svc.Restore(context.Background())

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthService_Restore_Confirmed(t *testing.T) {
	svc, client := newTestAuthSvc(t)

	gomock.InOrder(
		client.EXPECT().Session().Return(testSession),
		client.EXPECT().ValidateSession(gomock.Any()).
			Return(models.NewPayload([]byte(`{"success":true,"user":{"id":"1","email":"u@x.com","name":"U"}}`)), true),
	)

	account, err := svc.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AccountInfo{ID: "1", Email: "u@x.com", Name: "U"}, account)
}

func TestAuthService_Restore_ConfirmedWithoutUser(t *testing.T) {
	svc, client := newTestAuthSvc(t)

	client.EXPECT().Session().Return(testSession)
	client.EXPECT().ValidateSession(gomock.Any()).Return(models.NewPayload([]byte(`{"success":true}`)), true)

	account, err := svc.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AccountInfo{}, account)
}

func TestAuthService_Restore_Rejected(t *testing.T) {
	tests := []struct {
		name         string
		sessionAfter models.Session
		wantErr      error
	}{
		{"dropped by backend", models.Session{}, ErrSessionExpired},
		{"kept", testSession, ErrSessionNotConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newTestAuthSvc(t)

			gomock.InOrder(
				client.EXPECT().Session().Return(testSession),
				client.EXPECT().ValidateSession(gomock.Any()).Return(models.Payload{}, false),
				client.EXPECT().Session().Return(tt.sessionAfter),
			)

			_, err := svc.Restore(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestAuthService_Status(t *testing.T) {
	svc, client := newTestAuthSvc(t)

	client.EXPECT().Session().Return(testSession)
	client.EXPECT().IsAuthenticated().Return(false)

	status := svc.Status()

	assert.Equal(t, models.SessionStatus{Authenticated: false, HasRefresh: true, ExpiresAt: testSession.ExpiryTime()}, status)
}

func TestAuthService_Status_NoExpiry(t *testing.T) {
	svc, client := newTestAuthSvc(t)

	client.EXPECT().Session().Return(models.Session{AccessToken: "A"})
	client.EXPECT().IsAuthenticated().Return(true)

	status := svc.Status()

	assert.True(t, status.Authenticated)
	assert.False(t, status.HasRefresh)
	assert.True(t, status.ExpiresAt.IsZero())
}
