// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"strconv"
	"testing"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/metrics"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/models"
	"github.com/golang-jwt/jwt/v5"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case; an unset field panics when called.
type mockAuthService struct {
	registerFn   func(ctx context.Context, email, username, password string) (models.AuthResponse, error)
	loginFn      func(ctx context.Context, email, password string) (models.AuthResponse, error)
	verifyFn     func(ctx context.Context, token string) (models.User, error)
	parseTokenFn func(ctx context.Context, token string) (models.Token, error)
	cleanupFn    func(ctx context.Context) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, username, password string) (models.AuthResponse, error) {
	return m.registerFn(ctx, email, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Verify(ctx context.Context, token string) (models.User, error) {
	return m.verifyFn(ctx, token)
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return m.parseTokenFn(ctx, token)
}

func (m *mockAuthService) CleanupSessions(ctx context.Context) (int64, error) {
	return m.cleanupFn(ctx)
}

type mockContentService struct {
	listFn   func(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)
	uploadFn func(ctx context.Context, userID int64, req models.UploadRequest) (models.ContentItem, error)
}

func (m *mockContentService) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	return m.listFn(ctx, filter)
}

func (m *mockContentService) Upload(ctx context.Context, userID int64, req models.UploadRequest) (models.ContentItem, error) {
	return m.uploadFn(ctx, userID, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with nop logging and fresh metrics. Nil
// services are replaced by empty mocks.
func newTestHandler(t *testing.T, auth service.AuthService, content service.ContentService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if content == nil {
		content = &mockContentService{}
	}

	svcs := &service.Services{
		AuthService:    auth,
		ContentService: content,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
	return NewHandler(svcs, Config{}, metrics.New(), logger.Nop())
}

// tokenFor returns the parsed token the auth service yields for userID.
func tokenFor(userID int64, sessionID string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      sessionID,
			Subject: strconv.FormatInt(userID, 10),
		},
		UserID: userID,
	}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
