package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// SetRole changes the stored role of an existing account. It is the only
// way to provision an administrator.
func (s *userService) SetRole(ctx context.Context, request models.SetRoleRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Str("role", string(request.Role)).Msg("invalid role change")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.userRepository.UpdateUserRole(ctx, request.Username, request.Role); err != nil {
		log.Err(err).Str("username", request.Username).Msg("role update ended with error")
		return fmt.Errorf("role update ended with error: %w", err)
	}

	log.Info().Str("username", request.Username).Str("role", string(request.Role)).Msg("role updated")
	return nil
}
