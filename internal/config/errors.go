// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates missing endpoint URLs or a negative
	// client timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN or an incomplete
	// upload backend.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing sign key or token lifetime.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive cleanup interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
