// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_StopsOnSuccess(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier(), retryBase: time.Millisecond}

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		if calls == 1 {
			return pgError(pgerrcode.DeadlockDetected)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_ReturnsUnwrappedError(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier(), retryBase: time.Millisecond}
	want := pgError(pgerrcode.ConnectionFailure)

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return want
	})

	assert.Equal(t, maxRetries+1, calls)
	assert.ErrorIs(t, err, want)
}

func TestWithRetry_NonRetryableRunsOnce(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier(), retryBase: time.Millisecond}
	want := errors.New("permanent")

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return want
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, want)
}

func TestWithRetry_WithoutClassifier(t *testing.T) {
	db := &DB{logger: logger.Nop()}

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return pgError(pgerrcode.ConnectionFailure)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	db := &DB{logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier(), retryBase: time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := db.withRetry(ctx, func(context.Context) error {
		calls++
		cancel()
		return pgError(pgerrcode.ConnectionFailure)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
