// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest is the body of POST auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by auth/login. Tokens are present only
// when Success is true.
type LoginResponse struct {
	Success       bool   `json:"success"`
	AccessToken   string `json:"accessToken,omitempty"`
	RefreshToken  string `json:"refreshToken,omitempty"`
	ExpiresAt     int64  `json:"expiresAt,omitempty"`
	ResetPassword bool   `json:"resetPassword,omitempty"`
	Message       string `json:"message,omitempty"`
}

// RefreshRequest is the body of POST auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse is the body returned by auth/refresh. Refresh tokens are
// not rotated, so only a new access token and its expiry come back.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt,omitempty"`
}

// LogonUserResponse is the body returned by api/auth/logon_user.
type LogonUserResponse struct {
	Success bool         `json:"success"`
	User    *AccountInfo `json:"user,omitempty"`
}

// AccountInfo describes the account behind the current session.
type AccountInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// LoginResult is what the client service reports to its callers after a
// login attempt.
type LoginResult struct {
	// ResetPassword is set when the backend asks the user to change the
	// password before continuing.
	ResetPassword bool
	// Session is the session persisted by the login.
	Session Session
}

// SessionStatus is a local snapshot of the client session.
type SessionStatus struct {
	Authenticated bool
	HasRefresh    bool
	// ExpiresAt is the zero time when no expiry is recorded.
	ExpiresAt time.Time
}
