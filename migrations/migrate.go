// Package migrations embeds the goose schema migrations of the catalog and
// applies them for the configured database driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database handle.
var ErrNilDB = errors.New("migration error: db is nil")

// dirs maps a database/sql driver name to its migration directory.
var dirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// goose keeps its base FS, dialect and logger in package globals.
var mu sync.Mutex

// Migrate applies every pending migration of the driver's migration set.
// driver is the database/sql driver name: "pgx" or "sqlite3".
func Migrate(ctx context.Context, db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return ErrNilDB
	}

	dir, ok := dirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into the structured logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level instead of exiting; goose returns the error to
// Migrate as well.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
