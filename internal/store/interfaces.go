// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer of Di-NEO: PostgreSQL
// repositories for users, sessions and content, the Redis session cache, the
// S3 and filesystem upload stores, and the client's SQLite token store.
package store

import (
	"context"
	"time"

	"github.com/digiplay/dineo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// SessionRepository persists server-side sessions backing issued tokens.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.StoredSession) (models.StoredSession, error)
	FindSession(ctx context.Context, id string) (models.StoredSession, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ContentRepository persists published content items.
type ContentRepository interface {
	ListContent(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)
	CreateContent(ctx context.Context, item models.ContentItem) (models.ContentItem, error)
}

// SessionCache keeps verified sessions close to the auth service.
type SessionCache interface {
	// GetSession returns [ErrCacheMiss] when id is not cached.
	GetSession(ctx context.Context, id string) (models.StoredSession, error)
	// SetSession caches session until its expiry.
	SetSession(ctx context.Context, session models.StoredSession) error
	DeleteSession(ctx context.Context, id string) error
}

// FileStorage stores uploaded files and returns their public URL.
type FileStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// TokenStore persists the client's session token between runs.
type TokenStore interface {
	// LoadToken returns [ErrTokenNotFound] when nothing is persisted.
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
