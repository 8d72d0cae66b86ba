// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Postgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB
	assert.ErrorIs(t, Migrate(db, Postgres), ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, Dialect("mysql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

// TestEmbeddedMigrations verifies that both schema sets are embedded and that
// every file carries goose annotations.
func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries, dir)

		for _, e := range entries {
			data, err := fs.ReadFile(embedMigrations, dir+"/"+e.Name())
			require.NoError(t, err)
			assert.Contains(t, string(data), "-- +goose Up", e.Name())
			assert.Contains(t, string(data), "-- +goose Down", e.Name())
		}
	}
}

// TestMigrate_SQLite applies the client schema to a real SQLite file.
func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	if err := db.Ping(); err != nil && strings.Contains(err.Error(), "CGO_ENABLED") {
		t.Skip("sqlite3 driver requires cgo")
	}

	require.NoError(t, Migrate(db, SQLite))

	_, err = db.Exec(`INSERT INTO settings (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	// applying again is a no-op
	require.NoError(t, Migrate(db, SQLite))
}
