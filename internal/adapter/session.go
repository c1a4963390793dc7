package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/appybrain-client/internal/utils"
	"github.com/MKhiriev/appybrain-client/models"
)

var errPartialSession = errors.New("persisted session holds only one of the two tokens")

// Session returns a copy of the in-memory session.
func (c *Client) Session() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// SaveSession replaces the in-memory session and persists it. Persistence
// failures are logged; the in-memory session stays authoritative. An
// expiresAt of zero is stored as absent.
func (c *Client) SaveSession(ctx context.Context, accessToken, refreshToken string, expiresAt int64) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	c.session = models.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}
	c.mu.Unlock()

	c.persist(ctx, KeyAccessToken, accessToken)
	c.persist(ctx, KeyRefreshToken, refreshToken)
	if expiresAt != 0 {
		c.persist(ctx, KeyExpiresAt, strconv.FormatInt(expiresAt, 10))
	} else {
		c.forget(ctx, KeyExpiresAt)
	}
}

// ClearSession empties the in-memory session and removes the persisted
// keys. Persistence failures are logged.
func (c *Client) ClearSession(ctx context.Context) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	c.session = models.Session{}
	c.mu.Unlock()

	c.forget(ctx, KeyAccessToken)
	c.forget(ctx, KeyRefreshToken)
	c.forget(ctx, KeyExpiresAt)
}

func (c *Client) persist(ctx context.Context, key, value string) {
	if err := c.kv.Set(ctx, key, value); err != nil {
		c.logger.Error().Err(err).Str("func", "Client.SaveSession").Str("key", key).Msg("failed to persist session")
	}
}

func (c *Client) forget(ctx context.Context, key string) {
	if err := c.kv.Remove(ctx, key); err != nil {
		c.logger.Error().Err(err).Str("func", "Client.ClearSession").Str("key", key).Msg("failed to remove persisted session")
	}
}

// loadSession reads the persisted session. Missing keys give an empty
// session.
func (c *Client) loadSession(ctx context.Context) (models.Session, error) {
	access, _, err := c.kv.Get(ctx, KeyAccessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("read %s: %w", KeyAccessToken, err)
	}
	refresh, _, err := c.kv.Get(ctx, KeyRefreshToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("read %s: %w", KeyRefreshToken, err)
	}
	rawExpiry, hasExpiry, err := c.kv.Get(ctx, KeyExpiresAt)
	if err != nil {
		return models.Session{}, fmt.Errorf("read %s: %w", KeyExpiresAt, err)
	}

	if (access == "") != (refresh == "") {
		return models.Session{}, errPartialSession
	}

	var expiresAt int64
	if hasExpiry && rawExpiry != "" {
		expiresAt, err = strconv.ParseInt(rawExpiry, 10, 64)
		if err != nil {
			return models.Session{}, fmt.Errorf("parse %s: %w", KeyExpiresAt, err)
		}
	}

	return models.Session{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// resolveExpiry returns expiresAt, or the exp claim of accessToken when the
// backend sent no expiry and the token is a JWT. Zero means unknown.
func (c *Client) resolveExpiry(accessToken string, expiresAt int64) int64 {
	if expiresAt != 0 {
		return expiresAt
	}
	if exp, ok := utils.ExpiryFromJWT(accessToken); ok {
		return exp
	}
	return 0
}
