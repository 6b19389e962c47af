package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, validator validators.Validator, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateBook stores a new book. A missing author or publisher surfaces as
// store.ErrReferencedEntityNotFound and no row is written.
func (s *bookService) CreateBook(ctx context.Context, request models.CreateBookRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid book data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	bookID, err := s.bookRepository.CreateBook(ctx, request.Book())
	if err != nil {
		log.Err(err).
			Int64("author_id", request.AuthorID).
			Int64("publisher_id", request.PublisherID).
			Msg("book creation ended with error")
		return 0, fmt.Errorf("book creation ended with error: %w", err)
	}

	return bookID, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]models.BookListItem, error) {
	books, err := s.bookRepository.ListBooks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("book listing ended with error")
		return nil, fmt.Errorf("book listing ended with error: %w", err)
	}

	return books, nil
}

func (s *bookService) GetBook(ctx context.Context, bookID int64) (models.BookDetails, error) {
	book, err := s.bookRepository.GetBookByID(ctx, bookID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", bookID).Msg("book lookup ended with error")
		return models.BookDetails{}, fmt.Errorf("book lookup ended with error: %w", err)
	}

	return book, nil
}

// SearchBooks is a case-insensitive substring match on the title.
func (s *bookService) SearchBooks(ctx context.Context, title string) ([]models.BookListItem, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrSearchTermRequired)
	}

	books, err := s.bookRepository.SearchBooksByTitle(ctx, title)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", title).Msg("book search ended with error")
		return nil, fmt.Errorf("book search ended with error: %w", err)
	}

	return books, nil
}

func (s *bookService) ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error) {
	books, err := s.bookRepository.ListBooksByAuthor(ctx, authorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("author_id", authorID).Msg("book listing by author ended with error")
		return nil, fmt.Errorf("book listing by author ended with error: %w", err)
	}

	return books, nil
}

func (s *bookService) ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error) {
	books, err := s.bookRepository.ListBooksByPublisher(ctx, publisherID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("publisher_id", publisherID).Msg("book listing by publisher ended with error")
		return nil, fmt.Errorf("book listing by publisher ended with error: %w", err)
	}

	return books, nil
}
