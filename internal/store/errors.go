// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUnknownBackend is returned by [NewKeyValueStore] for a backend name
	// it does not recognise.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrStoreUnavailable wraps connection failures of remote backends.
	ErrStoreUnavailable = errors.New("storage is unavailable")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("storage is closed")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrMigrating          = errors.New("failed to migrate storage schema")
)
