// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// [errors.Is].
var (
	// ErrUserAlreadyExists is returned when the email or the username is
	// already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrUserNotFound = errors.New("user was not found")

	// ErrSessionNotFound is returned for an unknown or deleted session id.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrContentNotSaved is returned when an INSERT completes without
	// returning the new row.
	ErrContentNotSaved = errors.New("content was not saved")

	// ErrTokenNotFound is returned by the client token store when no token
	// is persisted.
	ErrTokenNotFound = errors.New("token is not persisted")

	// ErrCacheMiss is returned by the session cache for absent keys.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidObjectKey is returned by file storages for keys that would
	// escape the storage root.
	ErrInvalidObjectKey = errors.New("invalid object key")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
