package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// resty installs a cookie jar on every client it creates, so cookies set by
// the backend are sent back on later requests to the same origin.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with an independent resty.Client.
// A positive timeout bounds every request made through it.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
