// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the catalogctl client of the catalog HTTP API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can match them with [errors.Is] (e.g. [ErrConflict]
// for 409, [ErrForbidden] for a missing admin role).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-library-catalog/models"
)

// CatalogAPI calls the library catalog REST API.
type CatalogAPI interface {
	// SetToken stores the bearer token attached to admin requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	Version(ctx context.Context) (string, error)

	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	CreateAuthor(ctx context.Context, req models.CreateAuthorRequest) (models.AuthorCreatedResponse, error)
	CreatePublisher(ctx context.Context, req models.CreatePublisherRequest) (models.PublisherCreatedResponse, error)
	CreateBook(ctx context.Context, req models.CreateBookRequest) (models.BookCreatedResponse, error)

	ListBooks(ctx context.Context) ([]models.BookListItem, error)
	GetBook(ctx context.Context, bookID int64) (models.BookDetails, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]models.BookListItem, error)
	ListBooksByPublisher(ctx context.Context, publisherID int64) ([]models.BookListItem, error)

	SearchBooks(ctx context.Context, title string) ([]models.BookListItem, error)
	SearchAuthors(ctx context.Context, name string) ([]models.Author, error)
	SearchPublishers(ctx context.Context, name string) ([]models.Publisher, error)
}
