package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/appybrain-client/models"
)

const (
	methodGet  = http.MethodGet
	methodPost = http.MethodPost

	headerRequestID = "X-Request-ID"
)

// RequestOptions describes a single request.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body is encoded as JSON. A []byte or json.RawMessage is sent verbatim.
	// Nil sends no body.
	Body any
	// Headers are applied after the JSON content type, so they may override
	// it. They cannot override the bearer authorization header.
	Headers map[string]string
	// SkipAuth suppresses the bearer header and the refresh-and-retry on 401.
	SkipAuth bool
}

// Request sends one request to endpoint, bypassing the queue.
//
// When the response is 401, a refresh token is held and SkipAuth is false,
// the access token is refreshed once and, if that succeeds, the request is
// replayed once with the new token. The replayed response is returned as is.
// A caller whose ctx ends while waiting for the refresh gets a
// [*TransportError]; the session is left to the refresh.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions) (models.Payload, error) {
	fullURL, err := c.endpointURL(endpoint)
	if err != nil {
		return models.Payload{}, err
	}

	body, err := encodeBody(opts.Body)
	if err != nil {
		return models.Payload{}, err
	}

	resp, err := c.send(ctx, fullURL, opts, body)
	if err != nil {
		return models.Payload{}, err
	}

	if resp.StatusCode() == http.StatusUnauthorized && !opts.SkipAuth && c.Session().RefreshToken != "" {
		if c.refreshAccessToken(ctx) {
			resp, err = c.send(ctx, fullURL, opts, body)
			if err != nil {
				return models.Payload{}, err
			}
		} else if err = ctx.Err(); err != nil {
			return models.Payload{}, &TransportError{Cause: err}
		}
	}

	return c.handleResponse(resp)
}

// send performs one round trip. Any failure to obtain a response becomes a
// [*TransportError].
func (c *Client) send(ctx context.Context, fullURL string, opts RequestOptions, body []byte) (*resty.Response, error) {
	method := opts.Method
	if method == "" {
		method = methodGet
	}
	requestID := c.ids.Generate()

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(opts.Headers).
		SetHeader(headerRequestID, requestID)

	if token := c.Session().AccessToken; token != "" && !opts.SkipAuth {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, fullURL)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("func", "Client.send").
			Str("method", method).
			Str("url", fullURL).
			Str("request_id", requestID).
			Msg("request failed without a response")
		return nil, &TransportError{Cause: err}
	}

	c.logger.Debug().
		Str("func", "Client.send").
		Str("method", method).
		Str("url", fullURL).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return resp, nil
}

// handleResponse decodes the body as JSON, falling back to raw text, and
// turns a non-2xx status into an [*HTTPError] carrying that body.
func (c *Client) handleResponse(resp *resty.Response) (models.Payload, error) {
	payload := models.NewPayload(resp.Body())

	if status := resp.StatusCode(); status < http.StatusOK || status >= http.StatusMultipleChoices {
		return models.Payload{}, &HTTPError{Status: status, Body: payload}
	}

	return payload, nil
}

func (c *Client) endpointURL(endpoint string) (string, error) {
	c.mu.RLock()
	baseURL, initialized := c.baseURL, c.initialized
	c.mu.RUnlock()

	if !initialized {
		return "", ErrNotInitialized
	}
	return baseURL + "/" + strings.TrimLeft(endpoint, "/"), nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return encoded, nil
}

// isAuthFailure reports whether err means the backend rejected the session.
func isAuthFailure(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.IsClientError() {
		return true
	}

	return strings.Contains(err.Error(), "Unauthorized")
}
