package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// appInfoService reports the catalog version configured at startup.
type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService fails when no version is configured, so the server never
// answers /api/version with an empty body.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("catalog version configured")

	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
