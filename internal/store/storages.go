// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
)

// Storages groups every server-side storage component.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	ContentRepository ContentRepository
	SessionCache      SessionCache
	FileStorage       FileStorage

	closers []io.Closer
}

// NewStorages connects to PostgreSQL, applies migrations, and sets up the
// session cache and the upload store selected by cfg.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		ContentRepository: NewContentRepository(db, log),
		SessionCache:      NewNopSessionCache(),
		closers:           []io.Closer{db},
	}

	if cfg.Cache.RedisURL != "" {
		cache, err := NewRedisSessionCache(ctx, cfg.Cache.RedisURL, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.SessionCache = cache
		s.closers = append(s.closers, cache)
	}

	if cfg.Storage.S3.Enabled() {
		files, err := NewS3FileStorage(ctx, cfg.Storage.S3, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.FileStorage = files
	} else {
		files, err := NewLocalFileStorage(cfg.Storage.Files, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.FileStorage = files
	}

	return s, nil
}

// Close releases the database pool and the cache client.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}

// ClientStorages groups the client's local storage.
type ClientStorages struct {
	TokenStore TokenStore
	db         *DB
}

// NewClientStorages opens (and creates) the SQLite file at dsn and applies the
// client schema.
func NewClientStorages(ctx context.Context, dsn string, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewTokenStore(db, log),
		db:         db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
