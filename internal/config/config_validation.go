// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
// Every failing group is reported; the result wraps the group sentinels.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Telegram.BaseURL == "" {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	reminder := cfg.Workers.Reminder
	if !reminder.Disabled {
		if reminder.Interval <= 0 || reminder.LeadTime < 0 || reminder.DispatchTimeout <= 0 {
			errs = append(errs, ErrInvalidWorkerConfigs)
		} else if _, err := time.LoadLocation(reminder.TimeZone); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err))
		}
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
		}
	}

	return errors.Join(errs...)
}
