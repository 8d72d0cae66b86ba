// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/digiplay/dineo/models"
)

// SessionManager owns the client's authentication token and current user.
// All methods are safe for concurrent use.
type SessionManager interface {
	// Restore verifies a persisted token and opens a session for its owner.
	// Any failure clears the persisted token and leaves the session empty.
	Restore(ctx context.Context) models.Session

	// Login and Register persist the returned token and open a session.
	// Errors carry the server's message verbatim.
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, email, username, password string) (models.Session, error)

	// Logout clears the persisted token and the in-memory session. The
	// server is not contacted.
	Logout(ctx context.Context) error

	Session() models.Session
	Token() string
	User() *models.User
	IsAuthenticated() bool
}

// ContentBrowser holds the content list of the active section.
// All methods are safe for concurrent use.
type ContentBrowser interface {
	// Load fetches the items of section and replaces the whole list. A
	// response overtaken by a later Load is discarded with ErrStaleResponse.
	Load(ctx context.Context, section models.Section) ([]models.ContentItem, error)

	// Upload publishes in with the session token and reloads the active
	// section.
	Upload(ctx context.Context, in models.UploadInput) (models.ContentItem, error)

	Items() []models.ContentItem
	// MyItems returns the loaded items owned by ownerID.
	MyItems(ownerID int64) []models.ContentItem
	Section() models.Section
	State() BrowserState
	// EmptyMessage is shown instead of an empty list.
	EmptyMessage() string
}
