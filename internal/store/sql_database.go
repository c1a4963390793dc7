package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/migrations"
)

// SQL dialects understood by [DB].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// DB is an open database connection together with what the key-value store
// needs to talk to it: the dialect, an error classifier and a logger.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}
	return nil
}
