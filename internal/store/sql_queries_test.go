// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetQuery(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{"postgres", DialectPostgres, "SELECT value FROM kv_entries WHERE key = $1"},
		{"sqlite", DialectSQLite, "SELECT value FROM kv_entries WHERE key = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetQuery(tt.dialect, "appybrain_access_token")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"appybrain_access_token"}, args)
		})
	}
}

func Test_buildUpsertQuery(t *testing.T) {
	query, args, err := buildUpsertQuery(DialectPostgres, "k", "v")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into kv_entries"))
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
	assert.Contains(t, q, "on conflict (key) do update set value = excluded.value")
	assert.Equal(t, []any{"k", "v"}, args)

	query, _, err = buildUpsertQuery(DialectSQLite, "k", "v")
	require.NoError(t, err)
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(DialectPostgres, "k")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv_entries WHERE key = $1", query)
	assert.Equal(t, []any{"k"}, args)
}

func Test_buildClearQuery(t *testing.T) {
	query, args, err := buildClearQuery(DialectSQLite)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv_entries", query)
	assert.Empty(t, args)
}
