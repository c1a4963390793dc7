package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/models"
)

func TestMapAdapterError(t *testing.T) {
	otherErr := errors.New("something else")

	tests := []struct {
		name    string
		err     error
		wantErr error
		same    bool
	}{
		{"nil", nil, nil, false},
		{"transport", &adapter.TransportError{Cause: errors.New("dial tcp")}, ErrServerUnreachable, false},
		{"bad request", &adapter.HTTPError{Status: 400}, ErrInvalidRequest, false},
		{"stale token", &adapter.HTTPError{Status: 401, Body: models.NewPayload([]byte(`{"message":"Unauthorized"}`))}, ErrSessionExpired, false},
		{"stale token raw", &adapter.HTTPError{Status: 401, Body: models.NewPayload([]byte(`Unauthorized`))}, ErrSessionExpired, false},
		{"other 401", &adapter.HTTPError{Status: 401, Body: models.NewPayload([]byte(`{"message":"bad password"}`))}, ErrWrongCredentials, false},
		{"forbidden", &adapter.HTTPError{Status: 403}, ErrAccessDenied, false},
		{"not found", &adapter.HTTPError{Status: 404}, ErrEndpointNotFound, false},
		{"internal", &adapter.HTTPError{Status: 500}, ErrServerFailure, false},
		{"unavailable", &adapter.HTTPError{Status: 503}, ErrServerFailure, false},
		{"unmapped status", &adapter.HTTPError{Status: 418}, nil, true},
		{"not an adapter error", otherErr, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			switch {
			case tt.same:
				assert.Equal(t, tt.err, got)
			case tt.wantErr == nil:
				assert.NoError(t, got)
			default:
				assert.ErrorIs(t, got, tt.wantErr)
			}
		})
	}
}

func TestMapAdapterError_KeepsOriginal(t *testing.T) {
	err := mapAdapterError(&adapter.HTTPError{Status: 403})

	assert.ErrorIs(t, err, adapter.ErrForbidden)

	var httpErr *adapter.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Status)
}
