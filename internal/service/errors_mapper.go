// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/internal/app"
)

// mapAdapterError translates an adapter error into a service business error.
// The original error stays reachable through errors.Is/As.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var transportErr *adapter.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}

	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if messageOf(httpErr) == app.MsgUnauthorized {
			return fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrEndpointNotFound, err)

	case httpErr.Status >= 500:
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}

// messageOf returns the "message" field of a JSON error body, or the raw
// body text.
func messageOf(httpErr *adapter.HTTPError) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := httpErr.Body.Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return httpErr.Body.Raw
}
