// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/digiplay/dineo/internal/adapter"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/models"
)

type sessionManager struct {
	tokens  store.TokenStore
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

func NewSessionManager(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionManager {
	return &sessionManager{
		tokens:  tokens,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Restore never fails: a missing, unreadable or rejected token leaves the
// client logged out.
func (s *sessionManager) Restore(ctx context.Context) models.Session {
	token, err := s.tokens.LoadToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			s.logger.Warn().Err(err).Str("func", "*sessionManager.Restore").Msg("reading persisted token failed")
		}
		return models.Session{}
	}

	user, err := s.adapter.Verify(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionManager.Restore").Msg("persisted token rejected")
		if clearErr := s.tokens.ClearToken(ctx); clearErr != nil {
			s.logger.Warn().Err(clearErr).Str("func", "*sessionManager.Restore").Msg("clearing persisted token failed")
		}
		s.setSession(models.Session{})
		return models.Session{}
	}

	session := models.Session{Token: token, User: &user}
	s.setSession(session)
	s.logger.Info().Int64("user_id", user.ID).Msg("session restored")

	return session
}

func (s *sessionManager) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	return s.open(ctx, resp), nil
}

func (s *sessionManager) Register(ctx context.Context, email, username, password string) (models.Session, error) {
	resp, err := s.adapter.Register(ctx, email, username, password)
	if err != nil {
		return models.Session{}, err
	}
	return s.open(ctx, resp), nil
}

// open persists the token and replaces the session. A failed write only
// costs the next restore, so it is logged and the session stays open.
func (s *sessionManager) open(ctx context.Context, resp models.AuthResponse) models.Session {
	if err := s.tokens.SaveToken(ctx, resp.Token); err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionManager.open").Msg("persisting token failed")
	}

	user := *resp.User
	session := models.Session{Token: resp.Token, User: &user}
	s.setSession(session)
	s.logger.Info().Int64("user_id", user.ID).Msg("logged in")

	return session
}

// Logout always empties the in-memory session, even when the persisted token
// cannot be removed.
func (s *sessionManager) Logout(ctx context.Context) error {
	s.setSession(models.Session{})

	if err := s.tokens.ClearToken(ctx); err != nil {
		s.logger.Err(err).Str("func", "*sessionManager.Logout").Msg("clearing persisted token failed")
		return fmt.Errorf("clearing persisted token: %w", err)
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *sessionManager) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.User == nil {
		return s.session
	}
	user := *s.session.User
	return models.Session{Token: s.session.Token, User: &user}
}

func (s *sessionManager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *sessionManager) User() *models.User {
	return s.Session().User
}

func (s *sessionManager) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.session.IsEmpty()
}

func (s *sessionManager) setSession(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}
