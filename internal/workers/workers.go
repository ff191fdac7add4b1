// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewServerWorkers builds the server's background jobs from cfg. The reset
// token sweeper is left out when its interval is not positive.
func NewServerWorkers(storages *store.Storages, cfg config.App, logger *logger.Logger) *Workers {
	var list []Worker
	if cfg.ResetTokenSweepInterval > 0 {
		list = append(list, NewResetTokenSweeper(storages.UserRepository, cfg.ResetTokenSweepInterval, logger))
	}

	logger.Debug().Int("count", len(list)).Msg("background workers configured")
	return NewWorkers(list...)
}

// Run starts every worker in its own goroutine and returns once all of
// them have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
