// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends understood by [Storage.Backend].
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the key-value store that persists the
	// session between runs.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// MockAPI configures the development backend.
	MockAPI MockAPI `envPrefix:"MOCKAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// BaseURL is the origin every API endpoint is resolved against
	// (e.g. "https://api.appybrain.example").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects the session key-value backend.
type Storage struct {
	// Backend is one of memory, file, sqlite, postgres, redis.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the file used by the file and sqlite backends.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`

	// DSN is the connection string of the postgres backend. For sqlite it
	// overrides Path when set.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Redis configures the redis backend.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings of the redis backend.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
	// Prefix namespaces every key written by the client.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionCheckInterval is how often the session watch job validates the
	// session against the backend.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Env: LOG_FILE
	File string `env:"FILE"`
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// MockAPI configures the development backend served by cmd/mockapi.
type MockAPI struct {
	// Address is the listen address in "host:port" form.
	// Env: MOCKAPI_ADDRESS
	Address string `env:"ADDRESS"`
	// TokenSignKey signs issued access tokens.
	// Env: MOCKAPI_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// TokenIssuer is the "iss" claim of issued access tokens.
	// Env: MOCKAPI_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// TokenDuration is the lifetime of issued access tokens.
	// Env: MOCKAPI_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// environment variables, the already-parsed flag values in flagCfg (may be
// nil) and the JSON file named by either of them. Defaults fill the rest.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Backend: BackendFile,
			Redis:   Redis{Prefix: "appybrain:"},
		},
		Workers: Workers{SessionCheckInterval: 5 * time.Minute},
		Log:     Log{Level: "info"},
		MockAPI: MockAPI{
			Address:       "localhost:8080",
			TokenSignKey:  "appybrain-dev-sign-key",
			TokenIssuer:   "appybrain-mockapi",
			TokenDuration: 15 * time.Minute,
		},
	}
}

// defaultStoragePath returns the per-user store location of backend, or ""
// when the backend does not keep a local file.
func defaultStoragePath(backend string) string {
	var name string
	switch backend {
	case BackendFile:
		name = "session.json"
	case BackendSQLite:
		name = "session.db"
	default:
		return ""
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "appybrain", name)
}

const redacted = "[REDACTED]"

// Redacted returns a copy of cfg safe to log: secrets and connection strings
// are replaced by a placeholder.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	cfg.Storage.DSN = redact(cfg.Storage.DSN)
	cfg.Storage.Redis.Password = redact(cfg.Storage.Redis.Password)
	cfg.MockAPI.TokenSignKey = redact(cfg.MockAPI.TokenSignKey)
	return cfg
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}
