// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the Di-NEO server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// SessionCleaner deletes expired sessions and reports how many were removed.
// service.AuthService satisfies it.
type SessionCleaner interface {
	CleanupSessions(ctx context.Context) (int64, error)
}
