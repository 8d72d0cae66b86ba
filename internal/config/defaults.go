// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/digiplay/dineo/models"
)

// Defaults returns the values used for every field no other source sets.
// TokenSignKey and the database DSN have no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "dineo",
			TokenDuration: models.DefaultSessionDuration,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Storage: Storage{
			Files: Files{
				Dir:           "uploads",
				PublicBaseURL: "http://localhost:8080/files",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			CORSOrigins:    []string{"*"},
		},
		Adapter: Adapter{
			AuthURL:    "http://localhost:8080/api/auth",
			ContentURL: "http://localhost:8080/api/content",
		},
		Client: Client{
			DSN: "dineo.db",
		},
		Workers: Workers{
			SessionCleanupInterval: time.Hour,
		},
	}
}
