// Package utils provides general-purpose helper utilities used across the
// client and the development backend: context keys, JSON response writing,
// the HTTP client wrapper, JWT helpers and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the authenticated account identifier
// is stored in a request context.
var AccountCtxKey = contextKey("account")

// GetAccountFromContext retrieves the account identifier stored under
// [AccountCtxKey]. ok is false when it is missing, empty or not a string.
func GetAccountFromContext(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(AccountCtxKey).(string)
	return account, ok && account != ""
}
