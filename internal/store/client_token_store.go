// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiplay/dineo/internal/logger"
)

// AuthTokenKey is the settings key under which the session token is kept.
const AuthTokenKey = "dineo.auth_token"

// tokenStore is the SQLite-backed implementation of [TokenStore]. The token
// lives in a single row of the settings table.
type tokenStore struct {
	db     *DB
	logger *logger.Logger
}

func NewTokenStore(db *DB, logger *logger.Logger) TokenStore {
	return &tokenStore{db: db, logger: logger}
}

func (s *tokenStore) LoadToken(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, selectSetting, AuthTokenKey).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		s.logger.Err(err).Str("func", "*tokenStore.LoadToken").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (s *tokenStore) SaveToken(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, upsertSetting, AuthTokenKey, token); err != nil {
		s.logger.Err(err).Str("func", "*tokenStore.SaveToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ClearToken succeeds when no token is persisted.
func (s *tokenStore) ClearToken(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteSetting, AuthTokenKey); err != nil {
		s.logger.Err(err).Str("func", "*tokenStore.ClearToken").Msg("error clearing token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
