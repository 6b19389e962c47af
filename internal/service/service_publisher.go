package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

type publisherService struct {
	publisherRepository store.PublisherRepository
	validator           validators.Validator
	logger              *logger.Logger
}

func NewPublisherService(publisherRepository store.PublisherRepository, validator validators.Validator, logger *logger.Logger) PublisherService {
	return &publisherService{
		publisherRepository: publisherRepository,
		validator:           validator,
		logger:              logger,
	}
}

func (s *publisherService) CreatePublisher(ctx context.Context, request models.CreatePublisherRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid publisher data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	publisherID, err := s.publisherRepository.CreatePublisher(ctx, request.Publisher())
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("publisher creation ended with error")
		return 0, fmt.Errorf("publisher creation ended with error: %w", err)
	}

	return publisherID, nil
}

func (s *publisherService) SearchPublishers(ctx context.Context, name string) ([]models.Publisher, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrSearchTermRequired)
	}

	publishers, err := s.publisherRepository.SearchPublishers(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("publisher search ended with error")
		return nil, fmt.Errorf("publisher search ended with error: %w", err)
	}

	return publishers, nil
}
