package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	testKeyValueStoreContract(t, s)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "appybrain_refresh_token", "R1"))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	v, found, err := reopened.Get(ctx, "appybrain_refresh_token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "R1", v)
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "k", "v"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStore_EmptyFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, found, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_FailedWriteKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "old"))

	// a directory in place of the file makes every write fail
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o700))

	assert.Error(t, s.Set(ctx, "k", "new"))

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "old", v)
}

func TestFileStore_Closed(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrStoreClosed)
}
