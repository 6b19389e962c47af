// Package service holds the business logic between the HTTP handlers and the
// store: request validation, password hashing, token lifecycle and the
// catalog operations.
package service

import (
	"context"

	"github.com/MKhiriev/go-library-catalog/models"
)

// AuthService registers and authenticates users and manages bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserRole returns the role currently stored for userID. Roles are
	// never read from the token so a demotion applies immediately.
	GetUserRole(ctx context.Context, userID int64) (models.Role, error)
}

// UserService covers account administration that has no HTTP route.
type UserService interface {
	SetRole(ctx context.Context, request models.SetRoleRequest) error
}

type AuthorService interface {
	CreateAuthor(ctx context.Context, request models.CreateAuthorRequest) (int64, error)
	SearchAuthors(ctx context.Context, name string) ([]models.Author, error)
}

type PublisherService interface {
	CreatePublisher(ctx context.Context, request models.CreatePublisherRequest) (int64, error)
	SearchPublishers(ctx context.Context, name string) ([]models.Publisher, error)
}

type BookService interface {
	CreateBook(ctx context.Context, request models.CreateBookRequest) (int64, error)
	ListBooks(ctx context.Context) ([]models.BookListItem, error)
	GetBook(ctx context.Context, bookID int64) (models.BookDetails, error)
	SearchBooks(ctx context.Context, title string) ([]models.BookListItem, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error)
	ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
