// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/digiplay/dineo/models"
)

// contentListLimit caps the number of items returned by a content listing.
const contentListLimit = 100

const (
	createUser = `INSERT INTO users (email, username, password_hash, avatar_url)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, username, password_hash, avatar_url, created_at;`

	findUserByEmail = `SELECT id, email, username, password_hash, avatar_url, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, username, password_hash, avatar_url, created_at
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3)
    RETURNING created_at;`

	findSessionByID = `SELECT id, user_id, expires_at, created_at
    FROM sessions
    WHERE id = $1;`

	deleteSession = `DELETE FROM sessions WHERE id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions WHERE expires_at <= $1;`

	createContent = `INSERT INTO content (
            user_id,
            type,
            title,
            description,
            file_url,
            thumbnail_url,
            category,
            price,
            discount
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, downloads, views, created_at;`

	// client-side settings table
	upsertSetting = `INSERT INTO settings (key, value, updated_at)
    VALUES ($1, $2, CURRENT_TIMESTAMP)
    ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	selectSetting = `SELECT value FROM settings WHERE key = $1;`

	deleteSetting = `DELETE FROM settings WHERE key = $1;`
)

var contentColumns = []string{
	"c.id",
	"c.user_id",
	"c.type",
	"c.title",
	"c.description",
	"c.file_url",
	"c.thumbnail_url",
	"c.category",
	"c.price",
	"c.discount",
	"c.downloads",
	"c.views",
	"u.username",
	"c.created_at",
}

// buildListContentQuery builds the newest-first content listing joined with
// the author's username. Nil filter fields are not applied.
func buildListContentQuery(filter models.ContentFilter) (string, []any, error) {
	builder := sq.Select(contentColumns...).
		From("content c").
		LeftJoin("users u ON u.id = c.user_id").
		OrderBy("c.created_at DESC").
		Limit(contentListLimit).
		PlaceholderFormat(sq.Dollar)

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"c.type": string(*filter.Type)})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"c.user_id": *filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
