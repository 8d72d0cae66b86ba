// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/digiplay/dineo/models"
)

// AuthService registers and authenticates users and manages the sessions
// backing their tokens.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	// Verify returns the owner of a valid token.
	Verify(ctx context.Context, token string) (models.User, error)
	// ParseToken checks the signature and the backing session of token.
	ParseToken(ctx context.Context, token string) (models.Token, error)
	// CleanupSessions removes expired sessions and returns how many were
	// deleted.
	CleanupSessions(ctx context.Context) (int64, error)
}

// ContentService lists and publishes content items.
type ContentService interface {
	List(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)
	Upload(ctx context.Context, userID int64, req models.UploadRequest) (models.ContentItem, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ContentServiceWrapper decorates a ContentService.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService
}
