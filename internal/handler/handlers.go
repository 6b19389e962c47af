// Package handler assembles the transport handlers exposed by the server.
package handler

import (
	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/handler/http"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
