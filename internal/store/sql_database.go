// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	// maxRetries is the number of extra attempts after the first one.
	maxRetries     = 2
	baseRetryDelay = 100 * time.Millisecond
)

// DB wraps *sql.DB with the error classification used to decide whether a
// failed read is retried.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// retryBase overrides baseRetryDelay when non-zero.
	retryBase time.Duration
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the client schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// withRetry runs fn, retrying with exponential backoff while the error is
// classified as [Retryable]. Without a classifier fn runs once.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	base := db.retryBase
	if base == 0 {
		base = baseRetryDelay
	}
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(base))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil || db.errorClassificator == nil {
			return err
		}
		if db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
