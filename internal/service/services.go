package service

import (
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/crypto"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	AuthorService    AuthorService
	PublisherService PublisherService
	BookService      BookService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewCatalogValidator()

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, validator, cfg, logger),
		UserService:      NewUserService(storages.UserRepository, validator, logger),
		AuthorService:    NewAuthorService(storages.AuthorRepository, validator, logger),
		PublisherService: NewPublisherService(storages.PublisherRepository, validator, logger),
		BookService:      NewBookService(storages.BookRepository, validator, logger),
		AppInfoService:   appInfoService,
	}, nil
}
