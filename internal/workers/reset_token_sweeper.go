// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
)

type resetTokenSweeper struct {
	purger   ResetTokenPurger
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewResetTokenSweeper returns a Worker that purges expired reset tokens
// every interval. Tokens are already rejected once expired; the sweep only
// keeps stale digests from lingering in the users table.
func NewResetTokenSweeper(purger ResetTokenPurger, interval time.Duration, logger *logger.Logger) Worker {
	return &resetTokenSweeper{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *resetTokenSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("reset token sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reset token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *resetTokenSweeper) sweep(ctx context.Context) {
	purged, err := s.purger.PurgeExpiredResetTokens(ctx, s.now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("error purging expired reset tokens")
		}
		return
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired reset tokens purged")
	}
}
