// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/digiplay/dineo/internal/logger"
)

// DefaultSessionCleanupInterval is used when no interval is configured.
const DefaultSessionCleanupInterval = time.Hour

// SessionCleanupWorker purges expired sessions once at start and then on
// every tick. A failed pass is logged and retried on the next tick.
type SessionCleanupWorker struct {
	sessions SessionCleaner
	interval time.Duration

	logger *logger.Logger
}

func NewSessionCleanupWorker(sessions SessionCleaner, interval time.Duration, logger *logger.Logger) *SessionCleanupWorker {
	if interval <= 0 {
		interval = DefaultSessionCleanupInterval
	}

	return &SessionCleanupWorker{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (w *SessionCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.cleanup(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session cleanup worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *SessionCleanupWorker) cleanup(ctx context.Context) {
	deleted, err := w.sessions.CleanupSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "*SessionCleanupWorker.cleanup").Msg("deleting expired sessions failed")
		}
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
