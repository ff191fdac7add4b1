// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashKey == "" {
		errs = append(errs, fmt.Errorf("%w: password hash key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token issuer and durations must be set", ErrInvalidAppConfigs))
	}
	if cfg.App.ResetDelivery != ResetDeliveryResponse && cfg.App.ResetDelivery != ResetDeliveryLog {
		errs = append(errs, fmt.Errorf("%w: unknown reset delivery %q", ErrInvalidAppConfigs, cfg.App.ResetDelivery))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database URI is required", ErrInvalidStorageConfigs))
	}
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
