// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/migrations"
)

// DB wraps a database/sql pool together with the schema dialect it serves.
type DB struct {
	*sql.DB
	dialect migrations.Dialect
	logger  *logger.Logger
}

// Migrate applies the embedded schema matching the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
