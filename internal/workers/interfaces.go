// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs alongside the HTTP
// server. It defines the Worker interface and a Workers aggregate that
// starts every worker and waits for all of them to stop.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ResetTokenPurger clears password-reset tokens that are past their expiry.
// It is satisfied by [store.UserRepository].
type ResetTokenPurger interface {
	PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}
