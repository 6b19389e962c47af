package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
)

// bookRepository is the SQL implementation of [BookRepository]. Every read
// joins books with their author and publisher.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by db.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook inserts a book. The store enforces that both the author and the
// publisher exist; a violation yields [ErrReferencedEntityNotFound] and no row.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createBook(book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var bookID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&bookID); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").
			Int64("author_id", book.AuthorID).
			Int64("publisher_id", book.PublisherID).
			Msg("error inserting book")

		if r.db.classify(err) == ForeignKeyViolation {
			return 0, fmt.Errorf("%w: %w", ErrReferencedEntityNotFound, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bookID, nil
}

func (r *bookRepository) ListBooks(ctx context.Context) ([]models.BookListItem, error) {
	query, args, err := r.db.queries.listBooks()
	return r.queryBookList(ctx, "*bookRepository.ListBooks", query, args, err)
}

func (r *bookRepository) SearchBooksByTitle(ctx context.Context, fragment string) ([]models.BookListItem, error) {
	query, args, err := r.db.queries.searchBooksByTitle(fragment)
	return r.queryBookList(ctx, "*bookRepository.SearchBooksByTitle", query, args, err)
}

func (r *bookRepository) ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error) {
	query, args, err := r.db.queries.listBooksByAuthor(authorID)
	return r.queryBookList(ctx, "*bookRepository.ListBooksByAuthor", query, args, err)
}

func (r *bookRepository) ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error) {
	query, args, err := r.db.queries.listBooksByPublisher(publisherID)
	return r.queryBookList(ctx, "*bookRepository.ListBooksByPublisher", query, args, err)
}

// GetBookByID returns the joined record of a single book.
func (r *bookRepository) GetBookByID(ctx context.Context, bookID int64) (models.BookDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.getBookByID(bookID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBookByID").Msg("failed to build query")
		return models.BookDetails{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.BookDetails
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&book.BookID,
		&book.Title,
		&book.Type,
		&book.Price,
		&book.PublisherID,
		&book.AuthorID,
		&book.AuthorName,
		&book.PublisherName,
		&book.AuthorCountry,
		&book.AuthorCity,
		&book.PublisherCity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookDetails{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBookByID").Int64("book_id", bookID).Msg("error: scanning book")
		return models.BookDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// queryBookList runs a joined list query; buildErr is the error returned by
// the query builder.
func (r *bookRepository) queryBookList(ctx context.Context, funcName, query string, args []any, buildErr error) ([]models.BookListItem, error) {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.BookListItem, 0)
	for rows.Next() {
		var book models.BookListItem
		if err = rows.Scan(
			&book.BookID,
			&book.Title,
			&book.Type,
			&book.Price,
			&book.PublisherID,
			&book.AuthorID,
			&book.AuthorName,
			&book.PublisherName,
		); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating book rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}
