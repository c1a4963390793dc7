package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/models"
)

type authService struct {
	client adapter.SessionClient
	logger *logger.Logger
}

// NewAuthService returns an AuthService backed by client.
func NewAuthService(client adapter.SessionClient, log *logger.Logger) AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &authService{client: client, logger: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	payload, err := a.client.Login(ctx, email, password)
	if err != nil {
		return models.LoginResult{}, mapAdapterError(err)
	}

	var resp models.LoginResponse
	if err = payload.Decode(&resp); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrIncompleteLoginResponse, err)
	}

	if !resp.Success {
		a.logger.Info().Str("func", "authService.Login").Str("message", resp.Message).Msg("login rejected")
		return models.LoginResult{}, ErrWrongCredentials
	}

	session := a.client.Session()
	if session.IsEmpty() {
		return models.LoginResult{}, ErrIncompleteLoginResponse
	}

	return models.LoginResult{ResetPassword: resp.ResetPassword, Session: session}, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.client.Logout(ctx)
}

func (a *authService) Restore(ctx context.Context) (models.AccountInfo, error) {
	if a.client.Session().IsEmpty() {
		return models.AccountInfo{}, ErrNotLoggedIn
	}

	payload, ok := a.client.ValidateSession(ctx)
	if !ok {
		if a.client.Session().IsEmpty() {
			return models.AccountInfo{}, ErrSessionExpired
		}
		return models.AccountInfo{}, ErrSessionNotConfirmed
	}

	var resp models.LogonUserResponse
	if err := payload.Decode(&resp); err != nil || resp.User == nil {
		// the backend confirmed the session but did not describe the account
		return models.AccountInfo{}, nil
	}

	return *resp.User, nil
}

func (a *authService) Status() models.SessionStatus {
	session := a.client.Session()
	return models.SessionStatus{
		Authenticated: a.client.IsAuthenticated(),
		HasRefresh:    session.RefreshToken != "",
		ExpiresAt:     session.ExpiryTime(),
	}
}
