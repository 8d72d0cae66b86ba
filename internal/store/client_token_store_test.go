// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_LoadToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "stored token",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings").
					WithArgs(AuthTokenKey).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("jwt-token"))
			},
			want: "jwt-token",
		},
		{
			name: "no row",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings").
					WithArgs(AuthTokenKey).
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: ErrTokenNotFound,
		},
		{
			name: "empty value",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings").
					WithArgs(AuthTokenKey).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(""))
			},
			wantErr: ErrTokenNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM settings").
					WithArgs(AuthTokenKey).
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			got, err := NewTokenStore(db, logger.Nop()).LoadToken(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenStore_SaveToken(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(AuthTokenKey, "jwt-token").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := NewTokenStore(db, logger.Nop()).SaveToken(context.Background(), "jwt-token")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_SaveTokenError(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("INSERT INTO settings").WillReturnError(errors.New("readonly"))

	err := NewTokenStore(db, logger.Nop()).SaveToken(context.Background(), "jwt-token")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestTokenStore_ClearToken(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("DELETE FROM settings").
		WithArgs(AuthTokenKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewTokenStore(db, logger.Nop()).ClearToken(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
