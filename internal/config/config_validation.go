// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged config before the server starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.S3.Enabled() {
		if cfg.Storage.S3.Region == "" {
			return ErrInvalidStorageConfigs
		}
	} else if cfg.Storage.Files.Dir == "" || cfg.Storage.Files.PublicBaseURL == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate checks the client view. In-memory SQLite DSNs are rejected since
// the persisted token would not survive a restart.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if !isHTTPURL(cfg.Adapter.AuthURL) || !isHTTPURL(cfg.Adapter.ContentURL) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
