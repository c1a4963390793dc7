package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKeyValueStoreContract exercises the behaviour every backend shares.
func testKeyValueStoreContract(t *testing.T, s KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, found, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "appybrain_access_token", "A1"))

		v, found, err := s.Get(ctx, "appybrain_access_token")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "A1", v)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "appybrain_expires_at", "1000"))
		require.NoError(t, s.Set(ctx, "appybrain_expires_at", "2000"))

		v, found, err := s.Get(ctx, "appybrain_expires_at")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "2000", v)
	})

	t.Run("empty value is stored", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "empty", ""))

		v, found, err := s.Get(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, v)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "gone", "x"))
		require.NoError(t, s.Remove(ctx, "gone"))

		_, found, err := s.Get(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove missing key", func(t *testing.T) {
		assert.NoError(t, s.Remove(ctx, "never-set"))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "k1", "v1"))
		require.NoError(t, s.Set(ctx, "k2", "v2"))
		require.NoError(t, s.Clear(ctx))

		for _, k := range []string{"k1", "k2", "appybrain_access_token"} {
			_, found, err := s.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, found, k)
		}
	})
}
