package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/appybrain-client/models"
)

// Status sentinels. An [*HTTPError] with the matching status code satisfies
// errors.Is for these values.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrNotInitialized is returned by requests made before [Client.Init].
	ErrNotInitialized = errors.New("client is not initialized")

	// ErrInvalidBaseURL is returned by [Client.Init] for an unusable base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// TransportError reports that no HTTP response was received: the host was
// unreachable, the connection was refused, DNS failed, the request timed out
// or its context ended.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Status is always 0: no response was received.
func (e *TransportError) Status() int {
	return 0
}

// HTTPError reports a response with a non-2xx status. Body is the decoded
// response body, JSON or raw text.
type HTTPError struct {
	Status int
	Body   models.Payload
}

func (e *HTTPError) Error() string {
	body := e.Body.String()
	if body == "" {
		return fmt.Sprintf("http %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("http %d %s: %s", e.Status, http.StatusText(e.Status), body)
}

// Is matches the status sentinels declared in this package.
func (e *HTTPError) Is(target error) bool {
	return statusSentinel(e.Status) == target && target != nil
}

// IsClientError reports whether the status is in the 4xx range.
func (e *HTTPError) IsClientError() bool {
	return e.Status >= http.StatusBadRequest && e.Status < http.StatusInternalServerError
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	}
	return nil
}
