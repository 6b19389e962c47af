package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// Storages bundles the repositories sharing one connection pool.
type Storages struct {
	DB                  *DB
	UserRepository      UserRepository
	AuthorRepository    AuthorRepository
	PublisherRepository PublisherRepository
	BookRepository      BookRepository
}

// NewStorages connects to the configured database, applies pending
// migrations and builds every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds every repository on top of an opened DB.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		AuthorRepository:    NewAuthorRepository(db, log),
		PublisherRepository: NewPublisherRepository(db, log),
		BookRepository:      NewBookRepository(db, log),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
