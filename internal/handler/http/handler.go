package http

import (
	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string
	traceIDs           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		traceIDs:           utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
