// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.StoredSession) (models.StoredSession, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.ID, session.UserID, session.ExpiresAt)
	if err := row.Scan(&session.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("error creating session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return session, nil
}

// FindSession returns [ErrSessionNotFound] for unknown ids. Expired sessions
// are returned as is; callers check expiry.
func (r *sessionRepository) FindSession(ctx context.Context, id string) (models.StoredSession, error) {
	log := logger.FromContext(ctx)

	var session models.StoredSession
	err := r.db.QueryRowContext(ctx, findSessionByID, id).
		Scan(&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredSession{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error finding session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSession, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions removes every session that expired at or before now
// and returns how many were removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
