package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/appybrain-client/internal/config"
	"github.com/MKhiriev/appybrain-client/internal/logger"
)

// NewKeyValueStore builds the backend selected by cfg.Backend. SQL backends
// are connected and migrated before they are returned.
func NewKeyValueStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStore, error) {
	log.Debug().Str("func", "NewKeyValueStore").Str("backend", cfg.Backend).Msg("creating session storage")

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil

	case config.BackendFile:
		return NewFileStore(cfg.Path)

	case config.BackendSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = cfg.Path
		}
		db, err := NewConnectSQLite(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migratedSQLStore(db)

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migratedSQLStore(db)

	case config.BackendRedis:
		return NewRedisStore(ctx, &redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

func migratedSQLStore(db *DB) (KeyValueStore, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLStore(db), nil
}
