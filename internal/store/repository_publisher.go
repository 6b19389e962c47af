package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
)

// publisherRepository is the SQL implementation of [PublisherRepository].
type publisherRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPublisherRepository constructs a [PublisherRepository] backed by db.
func NewPublisherRepository(db *DB, logger *logger.Logger) PublisherRepository {
	logger.Debug().Msg("creating publisher repository")
	return &publisherRepository{
		db:     db,
		logger: logger,
	}
}

func (r *publisherRepository) CreatePublisher(ctx context.Context, publisher models.Publisher) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createPublisher(publisher)
	if err != nil {
		log.Err(err).Str("func", "*publisherRepository.CreatePublisher").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var publisherID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&publisherID); err != nil {
		log.Err(err).Str("func", "*publisherRepository.CreatePublisher").Msg("error inserting publisher")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return publisherID, nil
}

func (r *publisherRepository) SearchPublishers(ctx context.Context, fragment string) ([]models.Publisher, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.searchPublishers(fragment)
	if err != nil {
		log.Err(err).Str("func", "*publisherRepository.SearchPublishers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*publisherRepository.SearchPublishers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	publishers := make([]models.Publisher, 0)
	for rows.Next() {
		var publisher models.Publisher
		if err = rows.Scan(&publisher.PublisherID, &publisher.Name, &publisher.City); err != nil {
			log.Err(err).Str("func", "*publisherRepository.SearchPublishers").Msg("failed to scan publisher row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		publishers = append(publishers, publisher)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*publisherRepository.SearchPublishers").Msg("error iterating publisher rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return publishers, nil
}
