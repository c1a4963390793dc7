package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

type sqlStore struct {
	db *DB
}

// NewSQLStore returns a [KeyValueStore] over the kv_entries table of db. The
// schema must already be migrated.
func NewSQLStore(db *DB) KeyValueStore {
	return &sqlStore{db: db}
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetQuery(s.db.dialect, key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.withRetry(ctx, "sqlStore.Get", func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertQuery(s.db.dialect, key, value)
	if err != nil {
		return err
	}
	return s.exec(ctx, "sqlStore.Set", query, args)
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	query, args, err := buildDeleteQuery(s.db.dialect, key)
	if err != nil {
		return err
	}
	return s.exec(ctx, "sqlStore.Remove", query, args)
}

func (s *sqlStore) Clear(ctx context.Context) error {
	query, args, err := buildClearQuery(s.db.dialect)
	if err != nil {
		return err
	}
	return s.exec(ctx, "sqlStore.Clear", query, args)
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) exec(ctx context.Context, funcName, query string, args []any) error {
	err := s.withRetry(ctx, funcName, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// withRetry runs op until it succeeds, fails with a non-retryable error or
// runs out of attempts.
func (s *sqlStore) withRetry(ctx context.Context, funcName string, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		s.db.logger.Warn().Err(err).Str("func", funcName).Int("attempt", attempt).Msg("retryable storage error")
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}
