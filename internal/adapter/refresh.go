package adapter

import (
	"context"

	"github.com/MKhiriev/appybrain-client/models"
)

// refreshAccessToken exchanges the refresh token for a new access token.
// Concurrent callers share a single in-flight refresh and its outcome. The
// shared refresh ignores the cancellation of the caller that started it and
// is bounded by the HTTP client timeout instead; a caller whose ctx ends
// first stops waiting and gets false.
func (c *Client) refreshAccessToken(ctx context.Context) bool {
	refreshCtx := context.WithoutCancel(ctx)
	ch := c.refreshGroup.DoChan(EndpointRefresh, func() (any, error) {
		return c.doRefresh(refreshCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val.(bool)
	case <-ctx.Done():
		return false
	}
}

// doRefresh posts the refresh token with SkipAuth set. On success the new
// access token and expiry are saved alongside the unchanged refresh token.
// On any failure the session is cleared.
func (c *Client) doRefresh(ctx context.Context) bool {
	refreshToken := c.Session().RefreshToken
	if refreshToken == "" {
		return false
	}

	payload, err := c.Request(ctx, EndpointRefresh, RequestOptions{
		Method:   methodPost,
		Body:     models.RefreshRequest{RefreshToken: refreshToken},
		SkipAuth: true,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "Client.refreshAccessToken").Msg("token refresh failed, clearing session")
		c.ClearSession(ctx)
		return false
	}

	var resp models.RefreshResponse
	if err = payload.Decode(&resp); err != nil || resp.AccessToken == "" {
		c.logger.Warn().Err(err).Str("func", "Client.refreshAccessToken").Msg("malformed refresh response, clearing session")
		c.ClearSession(ctx)
		return false
	}

	expiresAt := c.resolveExpiry(resp.AccessToken, resp.ExpiresAt)
	if expiresAt == 0 {
		c.logger.Warn().Str("func", "Client.refreshAccessToken").Msg("refresh response has no expiry, clearing session")
		c.ClearSession(ctx)
		return false
	}

	c.SaveSession(ctx, resp.AccessToken, refreshToken, expiresAt)
	c.logger.Debug().Str("func", "Client.refreshAccessToken").Msg("access token refreshed")
	return true
}
