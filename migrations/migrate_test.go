// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the DB itself; every query fails as unexpected

	err = Migrate(context.Background(), db, "pgx", logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, "pgx", logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql", logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrate_SQLiteSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_schema?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, "sqlite3", logger.Nop()))

	// A second run is a no-op.
	require.NoError(t, Migrate(ctx, db, "sqlite3", logger.Nop()))

	for _, table := range []string{"users", "authors", "publishers", "books"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO books (title, publisher_id, author_id) VALUES ('Orphan', 1, 1)`)
	assert.Error(t, err, "books must reference existing authors and publishers")

	_, err = db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES ('alice', 'x')`)
	require.NoError(t, err)
	var role string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT role FROM users WHERE username = 'alice'`).Scan(&role))
	assert.Equal(t, "user", role)

	_, err = db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES ('alice', 'y')`)
	assert.Error(t, err, "usernames are unique")
}
