// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
)

// LocalFileStorage writes uploads below a base directory. The HTTP server
// exposes that directory under /files/.
type LocalFileStorage struct {
	baseDir       string
	publicBaseURL string
	logger        *logger.Logger
}

// NewLocalFileStorage creates cfg.Dir when missing.
func NewLocalFileStorage(cfg config.Files, log *logger.Logger) (*LocalFileStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewLocalFileStorage").Str("dir", cfg.Dir).Msg("failed to create upload dir")
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &LocalFileStorage{
		baseDir:       cfg.Dir,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        log,
	}, nil
}

// Put writes data to baseDir/key. contentType is implied by the extension
// when the file is served.
func (s *LocalFileStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := validateObjectKey(key); err != nil {
		return "", err
	}

	target := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*LocalFileStorage.Put").
			Str("key", key).
			Msg("failed to write file")
		return "", fmt.Errorf("write object: %w", err)
	}

	return joinURL(s.publicBaseURL, key), nil
}

// validateObjectKey rejects empty keys and keys that would escape the
// storage root.
func validateObjectKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return ErrInvalidObjectKey
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return ErrInvalidObjectKey
	}
	return nil
}
