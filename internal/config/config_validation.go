// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a Adapter) validate() error {
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidAdapterConfigs, a.BaseURL)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendMemory:
		return nil
	case BackendFile:
		if s.Path == "" {
			return fmt.Errorf("%w: file backend needs a path", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		if s.Path == "" && s.DSN == "" {
			return fmt.Errorf("%w: sqlite backend needs a path or dsn", ErrInvalidStorageConfigs)
		}
	case BackendPostgres:
		if s.DSN == "" {
			return fmt.Errorf("%w: postgres backend needs a dsn", ErrInvalidStorageConfigs)
		}
	case BackendRedis:
		if s.Redis.Address == "" {
			return fmt.Errorf("%w: redis backend needs an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}
