// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
)

// contentRepository is the PostgreSQL-backed implementation of
// [ContentRepository].
type contentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating content repository")
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

// ListContent returns at most 100 items, newest first. The result is never
// nil so it encodes as an empty JSON array.
func (r *contentRepository) ListContent(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContentQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListContent").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.ListContent").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ContentItem, 0, contentListLimit)
	for rows.Next() {
		var (
			item                          models.ContentItem
			thumbnail, category, username sql.NullString
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Type,
			&item.Title,
			&item.Description,
			&item.FileURL,
			&thumbnail,
			&category,
			&item.Price,
			&item.Discount,
			&item.Downloads,
			&item.Views,
			&username,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*contentRepository.ListContent").Msg("failed to scan content row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.ThumbnailURL = nullableString(thumbnail)
		item.Category = nullableString(category)
		item.Author = nullableString(username)
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*contentRepository.ListContent").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// CreateContent inserts item and fills in the generated columns.
func (r *contentRepository) CreateContent(ctx context.Context, item models.ContentItem) (models.ContentItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContent,
		item.UserID,
		string(item.Type),
		item.Title,
		item.Description,
		item.FileURL,
		item.ThumbnailURL,
		item.Category,
		item.Price,
		item.Discount,
	)

	if err := row.Scan(&item.ID, &item.Downloads, &item.Views, &item.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*contentRepository.CreateContent").
			Int64("user_id", item.UserID).
			Msg("failed to insert content")
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContentItem{}, ErrContentNotSaved
		}
		return models.ContentItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
