// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the Di-NEO server and client:
// typed context keys, JSON response writing, the resty client constructor,
// JWT issuing and verification, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")

	// SessionIDCtxKey stores the id of the session backing the request token.
	SessionIDCtxKey = contextKey("sessionID")
)

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUser stores the authenticated user and session ids in ctx.
func WithUser(ctx context.Context, userID int64, sessionID string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext returns the session id stored under [SessionIDCtxKey].
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
