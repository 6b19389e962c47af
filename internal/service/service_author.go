package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

type authorService struct {
	authorRepository store.AuthorRepository
	validator        validators.Validator
	logger           *logger.Logger
}

func NewAuthorService(authorRepository store.AuthorRepository, validator validators.Validator, logger *logger.Logger) AuthorService {
	return &authorService{
		authorRepository: authorRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *authorService) CreateAuthor(ctx context.Context, request models.CreateAuthorRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid author data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	authorID, err := s.authorRepository.CreateAuthor(ctx, request.Author())
	if err != nil {
		log.Err(err).Msg("author creation ended with error")
		return 0, fmt.Errorf("author creation ended with error: %w", err)
	}

	return authorID, nil
}

// SearchAuthors matches name against first OR last name, case-insensitively.
func (s *authorService) SearchAuthors(ctx context.Context, name string) ([]models.Author, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrSearchTermRequired)
	}

	authors, err := s.authorRepository.SearchAuthors(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("author search ended with error")
		return nil, fmt.Errorf("author search ended with error: %w", err)
	}

	return authors, nil
}
