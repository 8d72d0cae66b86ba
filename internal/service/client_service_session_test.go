// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/digiplay/dineo/internal/adapter"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/mock"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionManager(t *testing.T, ctrl *gomock.Controller) (*sessionManager, *mock.MockTokenStore, *mock.MockServerAdapter) {
	t.Helper()
	tokens := mock.NewMockTokenStore(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	return NewSessionManager(tokens, serverAdapter, logger.Nop()).(*sessionManager), tokens, serverAdapter
}

func neo() *models.User {
	return &models.User{ID: 7, Email: "neo@dineo.io", Username: "neo"}
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSessionManager_Restore_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, _ := newTestSessionManager(t, ctrl)

	tokens.EXPECT().LoadToken(gomock.Any()).Return("", store.ErrTokenNotFound)

	session := sm.Restore(context.Background())
	assert.True(t, session.IsEmpty())
	assert.False(t, sm.IsAuthenticated())
}

func TestSessionManager_Restore_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, serverAdapter := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		tokens.EXPECT().LoadToken(ctx).Return("tok", nil),
		serverAdapter.EXPECT().Verify(ctx, "tok").Return(*neo(), nil),
	)

	session := sm.Restore(ctx)
	require.False(t, session.IsEmpty())
	assert.Equal(t, "tok", sm.Token())
	assert.Equal(t, "neo", sm.User().Username)
	assert.True(t, sm.IsAuthenticated())
}

func TestSessionManager_Restore_RejectedTokenIsCleared(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
	}{
		{name: "expired", verifyErr: &adapter.APIError{Status: 401, Message: "invalid or expired token"}},
		{name: "network", verifyErr: adapter.ErrNetwork},
		{name: "decode", verifyErr: adapter.ErrDecodeResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sm, tokens, serverAdapter := newTestSessionManager(t, ctrl)

			gomock.InOrder(
				tokens.EXPECT().LoadToken(gomock.Any()).Return("stale", nil),
				serverAdapter.EXPECT().Verify(gomock.Any(), "stale").Return(models.User{}, tt.verifyErr),
				tokens.EXPECT().ClearToken(gomock.Any()).Return(nil),
			)

			session := sm.Restore(context.Background())
			assert.True(t, session.IsEmpty())
			assert.Empty(t, sm.Token())
			assert.Nil(t, sm.User())
		})
	}
}

func TestSessionManager_Restore_UnreadableStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, _ := newTestSessionManager(t, ctrl)

	tokens.EXPECT().LoadToken(gomock.Any()).Return("", errors.New("database is locked"))

	assert.True(t, sm.Restore(context.Background()).IsEmpty())
}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestSessionManager_LoginThenLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, serverAdapter := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		serverAdapter.EXPECT().Login(ctx, "neo@dineo.io", "secret").
			Return(models.AuthResponse{Token: "tok-1", User: neo()}, nil),
		tokens.EXPECT().SaveToken(ctx, "tok-1").Return(nil),
		tokens.EXPECT().ClearToken(ctx).Return(nil),
	)

	session, err := sm.Login(ctx, "neo@dineo.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.True(t, sm.IsAuthenticated())
	assert.Equal(t, int64(7), sm.User().ID)

	require.NoError(t, sm.Logout(ctx))
	assert.False(t, sm.IsAuthenticated())
	assert.True(t, sm.Session().IsEmpty())
}

func TestSessionManager_Login_ServerMessageVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, _, serverAdapter := newTestSessionManager(t, ctrl)

	serverAdapter.EXPECT().Login(gomock.Any(), "neo@dineo.io", "wrong").
		Return(models.AuthResponse{}, &adapter.APIError{Status: 401, Message: "invalid email or password"})

	_, err := sm.Login(context.Background(), "neo@dineo.io", "wrong")
	assert.EqualError(t, err, "invalid email or password")
	assert.False(t, sm.IsAuthenticated())
}

func TestSessionManager_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, serverAdapter := newTestSessionManager(t, ctrl)

	serverAdapter.EXPECT().Register(gomock.Any(), "neo@dineo.io", "neo", "secret").
		Return(models.AuthResponse{Token: "tok-2", User: neo()}, nil)
	tokens.EXPECT().SaveToken(gomock.Any(), "tok-2").Return(nil)

	session, err := sm.Register(context.Background(), "neo@dineo.io", "neo", "secret")
	require.NoError(t, err)
	assert.Equal(t, "neo", session.User.Username)
}

func TestSessionManager_Login_PersistFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, serverAdapter := newTestSessionManager(t, ctrl)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{Token: "tok", User: neo()}, nil)
	tokens.EXPECT().SaveToken(gomock.Any(), "tok").Return(errors.New("disk full"))

	_, err := sm.Login(context.Background(), "neo@dineo.io", "secret")
	require.NoError(t, err)
	assert.True(t, sm.IsAuthenticated())
}

func TestSessionManager_Logout_ClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, _ := newTestSessionManager(t, ctrl)
	sm.setSession(models.Session{Token: "tok", User: neo()})

	tokens.EXPECT().ClearToken(gomock.Any()).Return(errors.New("readonly"))

	err := sm.Logout(context.Background())
	require.Error(t, err)
	assert.False(t, sm.IsAuthenticated(), "memory session is cleared even when the store fails")
}

func TestSessionManager_SessionReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, _, _ := newTestSessionManager(t, ctrl)
	sm.setSession(models.Session{Token: "tok", User: neo()})

	sm.Session().User.Username = "changed"

	assert.Equal(t, "neo", sm.User().Username)
}

func TestSessionManager_ConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	sm, tokens, serverAdapter := newTestSessionManager(t, ctrl)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{Token: "tok", User: neo()}, nil).AnyTimes()
	tokens.EXPECT().SaveToken(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = sm.Login(context.Background(), "neo@dineo.io", "secret")
		}()
		go func() {
			defer wg.Done()
			_ = sm.IsAuthenticated()
			_ = sm.Token()
			_ = sm.User()
		}()
	}
	wg.Wait()

	assert.True(t, sm.IsAuthenticated())
}
