// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs.
func NewWorkers(sessions SessionCleaner, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionCleanupWorker(sessions, cfg.SessionCleanupInterval, logger),
		},
	}
}

// Run starts every worker on its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() { worker.Run(ctx) })
	}
	wg.Wait()
}
