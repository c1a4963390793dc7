package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/internal/store"
	"github.com/MKhiriev/appybrain-client/internal/utils"
	"github.com/MKhiriev/appybrain-client/internal/workers"
	"github.com/MKhiriev/appybrain-client/models"
)

// Backend endpoints, relative to the base URL.
const (
	EndpointLogin     = "auth/login"
	EndpointRefresh   = "auth/refresh"
	EndpointLogout    = "auth/logout"
	EndpointLogonUser = "api/auth/logon_user"
)

// Keys under which the session is persisted.
const (
	KeyAccessToken  = "appybrain_access_token"
	KeyRefreshToken = "appybrain_refresh_token"
	KeyExpiresAt    = "appybrain_expires_at"
)

// Options configures [Client.Init].
type Options struct {
	// BaseURL is the origin every endpoint is resolved against. A missing
	// scheme defaults to http.
	BaseURL string
	// Timeout bounds a single round trip. Zero keeps the current timeout.
	Timeout time.Duration
}

// Client is the session-aware API client. Create it with [NewClient] and
// call [Client.Init] before issuing requests. It is safe for concurrent use.
type Client struct {
	http   *utils.HTTPClient
	kv     store.KeyValueStore
	queue  *workers.Queue
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger

	refreshGroup singleflight.Group

	// persistMu orders session writes so the store always ends up holding
	// the last session written to memory.
	persistMu sync.Mutex

	mu          sync.RWMutex
	baseURL     string
	session     models.Session
	initialized bool
}

// ClientOption customises a [Client] built by [NewClient].
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *utils.HTTPClient) ClientOption {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithClock replaces time.Now in freshness checks.
func WithClock(now func() time.Time) ClientOption {
	return func(cl *Client) {
		cl.now = now
	}
}

// NewClient builds a client that persists its session in kv. The client
// starts its request queue immediately; release it with [Client.Close].
func NewClient(kv store.KeyValueStore, log *logger.Logger, opts ...ClientOption) *Client {
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		kv:     kv,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = utils.NewHTTPClient(0)
	}

	c.queue = workers.NewQueue(log)
	c.queue.Run()

	return c
}

// Init sets the base URL and loads the persisted session. It is idempotent:
// once initialized, later calls return nil without touching state. A session
// that cannot be loaded is logged and replaced by an empty one; only an
// unusable base URL fails Init.
func (c *Client) Init(ctx context.Context, opts Options) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	baseURL, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	c.baseURL = baseURL
	if opts.Timeout > 0 {
		c.http.SetTimeout(opts.Timeout)
	}

	session, err := c.loadSession(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "Client.Init").Msg("could not restore persisted session, starting empty")
		session = models.Session{}
	}
	c.session = session
	c.initialized = true

	c.logger.Debug().Str("func", "Client.Init").
		Str("base_url", baseURL).
		Bool("restored", !session.IsEmpty()).
		Msg("api client initialized")

	return nil
}

// Get queues a GET of endpoint.
func (c *Client) Get(ctx context.Context, endpoint string) (models.Payload, error) {
	return c.enqueue(ctx, endpoint, RequestOptions{Method: methodGet})
}

// Post queues a POST of body, encoded as JSON, to endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (models.Payload, error) {
	return c.enqueue(ctx, endpoint, RequestOptions{Method: methodPost, Body: body})
}

type queuedResult struct {
	payload models.Payload
	err     error
}

// enqueue runs Request as one unit of the request queue and waits for it.
func (c *Client) enqueue(ctx context.Context, endpoint string, opts RequestOptions) (models.Payload, error) {
	c.logger.Debug().Str("func", "Client.enqueue").
		Str("endpoint", endpoint).
		Int("queued_ahead", c.queue.Len()).
		Msg("queueing request")

	res := make(chan queuedResult, 1)
	err := c.queue.Do(ctx, func(ctx context.Context) error {
		payload, err := c.Request(ctx, endpoint, opts)
		res <- queuedResult{payload: payload, err: err}
		return err
	})

	select {
	case r := <-res:
		return r.payload, r.err
	default:
		// skipped, panicked, stopped, or ctx ended before the task ran
		return models.Payload{}, err
	}
}

// Login posts the credentials to the login endpoint. When the response
// carries an access token, a refresh token and an expiry, they become the
// new session. The response payload is returned as is; callers inspect its
// success and resetPassword fields.
func (c *Client) Login(ctx context.Context, email, password string) (models.Payload, error) {
	payload, err := c.enqueue(ctx, EndpointLogin, RequestOptions{
		Method:   methodPost,
		Body:     models.LoginRequest{Email: email, Password: password},
		SkipAuth: true,
	})
	if err != nil {
		return payload, err
	}

	var resp models.LoginResponse
	if err := payload.Decode(&resp); err != nil {
		c.logger.Warn().Err(err).Str("func", "Client.Login").Msg("login response is not a JSON object")
		return payload, nil
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return payload, nil
	}
	expiresAt := c.resolveExpiry(resp.AccessToken, resp.ExpiresAt)
	if expiresAt == 0 {
		c.logger.Warn().Str("func", "Client.Login").Msg("login response has no expiry, session not stored")
		return payload, nil
	}

	c.SaveSession(ctx, resp.AccessToken, resp.RefreshToken, expiresAt)
	return payload, nil
}

// Logout tells the backend to end the session and clears the local session
// whatever the outcome of that call.
func (c *Client) Logout(ctx context.Context) {
	if _, err := c.Post(ctx, EndpointLogout, struct{}{}); err != nil {
		c.logger.Warn().Err(err).Str("func", "Client.Logout").Msg("server logout failed, clearing local session anyway")
	}
	c.ClearSession(ctx)
}

// ValidateSession checks the session against the backend. It returns false
// without any network call when no access or refresh token is held. A
// response whose success field is true is returned with true; anything else
// is invalid. Authentication failures (any 4xx, or an error mentioning
// Unauthorized) clear the session; transport failures leave it in place.
func (c *Client) ValidateSession(ctx context.Context) (models.Payload, bool) {
	s := c.Session()
	if s.AccessToken == "" || s.RefreshToken == "" {
		return models.Payload{}, false
	}

	payload, err := c.Get(ctx, EndpointLogonUser)
	if err != nil {
		if isAuthFailure(err) {
			c.logger.Info().Err(err).Str("func", "Client.ValidateSession").Msg("session rejected by backend, clearing")
			c.ClearSession(ctx)
		} else {
			c.logger.Warn().Err(err).Str("func", "Client.ValidateSession").Msg("session check failed")
		}
		return payload, false
	}

	return payload, payload.Success()
}

// IsAuthenticated reports whether an access token is held and has not
// expired. It performs no I/O and says nothing about whether the backend
// still accepts the token.
func (c *Client) IsAuthenticated() bool {
	return c.Session().IsFresh(c.now())
}

// Close stops the request queue and closes the session store. Queued calls
// that have not started fail with [workers.ErrQueueStopped].
func (c *Client) Close() error {
	c.queue.Stop()
	return c.kv.Close()
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
