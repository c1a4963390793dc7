package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/appybrain-client/internal/config"
	"github.com/MKhiriev/appybrain-client/internal/logger"
)

func TestNewKeyValueStore(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Storage
	}{
		{"memory", config.Storage{Backend: config.BackendMemory}},
		{"file", config.Storage{Backend: config.BackendFile, Path: filepath.Join(dir, "session.json")}},
		{"sqlite path", config.Storage{Backend: config.BackendSQLite, Path: filepath.Join(dir, "a.db")}},
		{"sqlite dsn", config.Storage{Backend: config.BackendSQLite, DSN: filepath.Join(dir, "b.db")}},
		{"redis", config.Storage{Backend: config.BackendRedis, Redis: config.Redis{Address: mr.Addr(), Prefix: "t:"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewKeyValueStore(context.Background(), tt.cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			require.NoError(t, s.Set(context.Background(), "k", "v"))
			v, found, err := s.Get(context.Background(), "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "v", v)
		})
	}
}

func TestNewKeyValueStore_UnknownBackend(t *testing.T) {
	_, err := NewKeyValueStore(context.Background(), config.Storage{Backend: "etcd"}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownBackend)
}
