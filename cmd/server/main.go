package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/handler"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/server"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("library-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// signing key and DSN are secrets
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Dur("token_duration", cfg.App.TokenDuration).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
