// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors wrapped with details otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	off := cfg.Adapter.OpenFoodFacts
	if u, err := url.Parse(off.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid base url %q", ErrInvalidAdapterConfigs, off.BaseURL)
	}
	if off.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be finite and positive", ErrInvalidAdapterConfigs)
	}
	if off.BarcodeRequestsPerWindow <= 0 || off.SearchRequestsPerWindow <= 0 || off.Window <= 0 {
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidAdapterConfigs)
	}

	svc := cfg.Services
	if svc.LocalSearchLimit <= 0 || svc.ExternalSearchLimit <= 0 || svc.MaxLocalSearchLimit < svc.LocalSearchLimit {
		return fmt.Errorf("%w: search limits", ErrInvalidServicesConfigs)
	}

	return nil
}
