// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the appybrain backend
// surface and the client code that interprets its responses.
//
// All Msg* constants are written into the "message" field of JSON response
// bodies. Keeping them in one place keeps the mock backend and the client's
// error mapping in agreement.
package app

const (
	// MsgUnauthorized is sent with a 401 when the bearer token is missing,
	// expired, forged or revoked, and when a refresh token is unknown.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidLoginPassword accompanies a login response with
	// success=false.
	MsgInvalidLoginPassword = "Invalid email or password"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON"

	// MsgRefreshTokenRequired is returned when auth/refresh is called
	// without a refresh token.
	MsgRefreshTokenRequired = "refresh token is required"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
