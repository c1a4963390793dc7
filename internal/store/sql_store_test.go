package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/appybrain-client/internal/logger"
)

func newTestSQLStore(t *testing.T) (KeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLStore(&DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}), mock
}

// ── Get ──

func TestSQLStore_Get_Found(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("appybrain_access_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("A1"))

	v, found, err := s.Get(context.Background(), "appybrain_access_token")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "A1", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, found, err := s.Get(context.Background(), "k")

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_Error(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, _, err := s.Get(context.Background(), "k")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Set ──

func TestSQLStore_Set(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set_RetriesDeadlock(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("k", "v").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set_GivesUpAfterMaxAttempts(t *testing.T) {
	s, mock := newTestSQLStore(t)

	for i := 0; i < maxAttempts; i++ {
		mock.ExpectExec("INSERT INTO kv_entries").
			WithArgs("k", "v").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	}

	err := s.Set(context.Background(), "k", "v")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set_NoRetryOnConstraintError(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("k", "v").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	err := s.Set(context.Background(), "k", "v")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Remove / Clear / Close ──

func TestSQLStore_Remove(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("DELETE FROM kv_entries WHERE key").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Clear(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectExec("DELETE FROM kv_entries").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Close(t *testing.T) {
	s, _ := newTestSQLStore(t)

	require.NoError(t, s.Close())
}

// ── SQLite end to end ──

func TestSQLiteStore_Contract(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, filepath.Join(t.TempDir(), "dir", "kv.db"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := NewSQLStore(db)
	t.Cleanup(func() { _ = s.Close() })

	testKeyValueStoreContract(t, s)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(sql.ErrNoRows))
}
