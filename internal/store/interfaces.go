// Package store persists the client session between runs.
//
// Every backend implements [KeyValueStore]: a flat string-to-string map with
// get, set, remove and clear. The session client only ever stores a handful
// of keys, so backends favour simplicity over throughput.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_value_store_mock.go -package=mock

// KeyValueStore is a durable string map.
//
// Get reports found=false, with a nil error, for a missing key. Remove of a
// missing key is not an error. Clear removes every key owned by the store
// and nothing else.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
