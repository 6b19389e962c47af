// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server startup invariants.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if err := cfg.Storage.Validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}

func (a App) validate() error {
	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if a.PasswordHashCost < minPasswordHashCost || a.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be between %d and %d",
			ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	if a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

// Validate reports whether the storage settings are usable to open a
// database connection.
func (s Storage) Validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, s.DB.Driver) {
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
