package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/migrations"
)

// DB wraps the shared connection pool together with the dialect specific
// pieces: the error classifier and the query builder.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	queries            *queryBuilder
	logger             *logger.Logger
}

// NewConnect opens a connection pool for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// newDB assembles a DB for an already opened pool.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		driver:  driver,
		logger:  log,
		queries: newQueryBuilder(driver),
	}

	switch driver {
	case config.DriverSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema migrations of the DB's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver, db.logger)
}

// classify maps a failed statement to a classification; nil and foreign
// errors are [Unclassified].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}

	return db.errorClassificator.Classify(err)
}
