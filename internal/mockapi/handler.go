// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mockapi implements a development backend exposing the four
// endpoints the session client depends on: auth/login, auth/refresh,
// auth/logout and api/auth/logon_user.
//
// Access tokens are HS256 JWTs; refresh tokens are opaque UUIDs that are
// never rotated. Both are kept in memory and revoked on logout. The package
// backs the client's end-to-end tests and cmd/mockapi.
package mockapi

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/appybrain-client/internal/config"
	"github.com/MKhiriev/appybrain-client/internal/logger"
)

// Handler serves the mock backend.
type Handler struct {
	cfg    config.MockAPI
	users  *userStore
	tokens *tokenStore

	callsMu sync.Mutex
	calls   map[string]int

	logger *logger.Logger
}

func NewHandler(cfg config.MockAPI, log *logger.Logger) *Handler {
	log.Info().Msg("mock api handler created")
	return &Handler{
		cfg:    cfg,
		users:  newUserStore(),
		tokens: newTokenStore(),
		calls:  make(map[string]int),
		logger: log,
	}
}

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.withCallCounting)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/auth/logout", h.logout)
		r.Get("/api/auth/logon_user", h.logonUser)
	})

	return router
}

// AddUser registers an account that can log in with password.
func (h *Handler) AddUser(email, password, name string, resetPassword bool) error {
	return h.users.add(email, password, name, resetPassword)
}

// RevokeAccessTokens invalidates every access token issued to email while
// keeping its refresh tokens, so the next authorized call gets a 401 that a
// refresh can recover from.
func (h *Handler) RevokeAccessTokens(email string) {
	h.tokens.revokeAccess(email)
}

// Calls reports how many requests reached path.
func (h *Handler) Calls(path string) int {
	h.callsMu.Lock()
	defer h.callsMu.Unlock()
	return h.calls[path]
}

func (h *Handler) withCallCounting(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.callsMu.Lock()
		h.calls[r.URL.Path]++
		h.callsMu.Unlock()

		next.ServeHTTP(w, r)
	})
}
