// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements catalogctl, the operator command line of the
// library catalog.
//
// Database commands (migrate, user set-role) open the configured store
// directly. Every other command calls a running server through
// [adapter.CatalogAPI].
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-library-catalog/internal/adapter"
	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/spf13/cobra"
)

// tokenEnv lets `catalogctl login` output be exported for later admin calls.
const tokenEnv = "CATALOGCTL_TOKEN"

type app struct {
	cfg       config.ClientConfig
	buildInfo models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	token   string
	verbose bool
	asJSON  bool

	logger *logger.Logger
}

// NewRootCommand builds the catalogctl command tree. Command output goes to
// out and log output to errOut.
func NewRootCommand(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out, errOut io.Writer) *cobra.Command {
	a := &app{
		cfg:       *cfg,
		buildInfo: buildInfo,
		out:       out,
		errOut:    errOut,
		logger:    logger.Nop(),
	}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Library catalog administration CLI",
		Long:          `Manage the library catalog database and call the catalog REST API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logger.NewCLILogger("catalogctl", a.errOut, a.verbose)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Adapter.HTTPAddress, "server", a.cfg.Adapter.HTTPAddress, "catalog server base URL")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.StringVar(&a.token, "token", os.Getenv(tokenEnv), "bearer token for admin commands (env "+tokenEnv+")")
	flags.StringVar(&a.cfg.Storage.DB.Driver, "db-driver", a.cfg.Storage.DB.Driver, `database driver: "pgx" or "sqlite3"`)
	flags.StringVarP(&a.cfg.Storage.DB.DSN, "dsn", "d", a.cfg.Storage.DB.DSN, "database DSN")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "print debug logs")
	flags.BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		a.versionCommand(),
		a.migrateCommand(),
		a.userCommand(),
		a.signupCommand(),
		a.loginCommand(),
		a.authorCommand(),
		a.publisherCommand(),
		a.bookCommand(),
	)

	return root
}

// Execute runs the command tree built from the environment configuration.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	return NewRootCommand(cfg, buildInfo, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// api builds the HTTP client, carrying the --token value when set.
func (a *app) api() (adapter.CatalogAPI, error) {
	api, err := adapter.NewHTTPCatalogAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return nil, err
	}

	if a.token != "" {
		api.SetToken(a.token)
	}
	return api, nil
}

// openStorages connects to the database and applies pending migrations.
func (a *app) openStorages(ctx context.Context) (*store.Storages, error) {
	if err := a.cfg.Storage.Validate(); err != nil {
		return nil, err
	}

	storages, err := store.NewStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error opening storages: %w", err)
	}

	return storages, nil
}
