// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks API input before it reaches business logic.
//
// A Validator accepts any supported request type and may be restricted to a
// subset of fields. The returned sentinel errors carry the exact message the
// API sends back to clients.
package validators

import "context"

// Validator validates the provided input, optionally restricting validation
// to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
