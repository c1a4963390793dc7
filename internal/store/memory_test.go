package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Contract(t *testing.T) {
	testKeyValueStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	assert.NoError(t, s.Close())

	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), ErrStoreClosed)
	assert.ErrorIs(t, s.Remove(ctx, "k"), ErrStoreClosed)
	assert.ErrorIs(t, s.Clear(ctx), ErrStoreClosed)
}
