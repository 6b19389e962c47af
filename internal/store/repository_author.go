package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
)

// authorRepository is the SQL implementation of [AuthorRepository].
type authorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthorRepository constructs an [AuthorRepository] backed by db.
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *authorRepository) CreateAuthor(ctx context.Context, author models.Author) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createAuthor(author)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var authorID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&authorID); err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("error inserting author")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return authorID, nil
}

func (r *authorRepository) SearchAuthors(ctx context.Context, fragment string) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.searchAuthors(fragment)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.SearchAuthors").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.SearchAuthors").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0)
	for rows.Next() {
		var author models.Author
		if err = rows.Scan(
			&author.AuthorID,
			&author.FirstName,
			&author.LastName,
			&author.Country,
			&author.City,
			&author.Address,
		); err != nil {
			log.Err(err).Str("func", "*authorRepository.SearchAuthors").Msg("failed to scan author row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*authorRepository.SearchAuthors").Msg("error iterating author rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}
