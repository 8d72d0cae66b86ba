// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport layer for the Di-NEO auth and
// content APIs.
//
// [ServerAdapter] hides the HTTP details from the client services. Non-2xx
// responses are returned as [*APIError] values carrying the status and the
// server's message verbatim; they also match the sentinel errors of this
// package with [errors.Is]. Transport failures match [ErrNetwork].
package adapter

import (
	"context"

	"github.com/digiplay/dineo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the auth and content services.
type ServerAdapter interface {
	// Verify returns the owner of token.
	Verify(ctx context.Context, token string) (models.User, error)

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Register creates an account and returns its first session token.
	Register(ctx context.Context, email, username, password string) (models.AuthResponse, error)

	// ListContent fetches items matching filter, newest first. The result is
	// never nil.
	ListContent(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)

	// UploadContent publishes req on behalf of the owner of token.
	UploadContent(ctx context.Context, token string, req models.UploadRequest) (models.ContentItem, error)
}
