package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-library-catalog/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns its identifier.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// FindUserByUsername returns [ErrUserNotFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUserRole changes the stored role of an account.
	// It returns [ErrUserNotFound] when no account matches.
	UpdateUserRole(ctx context.Context, username string, role models.Role) error
}

// AuthorRepository persists authors.
type AuthorRepository interface {
	CreateAuthor(ctx context.Context, author models.Author) (int64, error)
	// SearchAuthors matches fragment against first or last name, case-insensitively.
	SearchAuthors(ctx context.Context, fragment string) ([]models.Author, error)
}

// PublisherRepository persists publishers.
type PublisherRepository interface {
	CreatePublisher(ctx context.Context, publisher models.Publisher) (int64, error)
	// SearchPublishers matches fragment against the name, case-insensitively.
	SearchPublishers(ctx context.Context, fragment string) ([]models.Publisher, error)
}

// BookRepository persists books and reads them joined with their author
// and publisher.
type BookRepository interface {
	// CreateBook returns [ErrReferencedEntityNotFound] when the author or
	// publisher does not exist.
	CreateBook(ctx context.Context, book models.Book) (int64, error)
	ListBooks(ctx context.Context) ([]models.BookListItem, error)
	// GetBookByID returns [ErrBookNotFound] when no book matches.
	GetBookByID(ctx context.Context, bookID int64) (models.BookDetails, error)
	SearchBooksByTitle(ctx context.Context, fragment string) ([]models.BookListItem, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error)
	ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error)
}

// ErrorClassificator maps a driver specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
