// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	expires := time.Now().Add(time.Hour)
	created := time.Now()
	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs("sess-1", int64(3), expires).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	session, err := repo.CreateSession(context.Background(), models.StoredSession{ID: "sess-1", UserID: 3, ExpiresAt: expires})
	require.NoError(t, err)
	assert.Equal(t, created, session.CreatedAt)
	assert.Equal(t, "sess-1", session.ID)
}

func TestCreateSession_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO sessions").WillReturnError(errors.New("fk violation"))

	_, err := repo.CreateSession(context.Background(), models.StoredSession{ID: "s", UserID: 99})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestFindSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	expires := time.Now().Add(time.Hour)
	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at", "created_at"}).
			AddRow("sess-1", 3, expires, time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	session, err := repo.FindSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.UserID)
	assert.Equal(t, expires, session.ExpiresAt)

	_, err = repo.FindSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM sessions WHERE id").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteSession(context.Background(), "sess-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpiredSessions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectExec("DELETE FROM sessions WHERE expires_at").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteExpiredSessions(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestDeleteExpiredSessions_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM sessions").WillReturnError(errors.New("conn reset"))

	_, err := repo.DeleteExpiredSessions(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
