// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transports managed by this package.
type Server interface {
	// RunServer serves until ctx is cancelled or a stop signal arrives, then
	// shuts down. It returns the first serve error, if any.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx's deadline.
	Shutdown(ctx context.Context) error
}
