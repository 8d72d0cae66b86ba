// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllGroups verifies that every env prefix maps to its group.
func TestParseEnv_AllGroups(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/dineo")
	t.Setenv("STORAGE_S3_BUCKET", "media")
	t.Setenv("CACHE_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_CORS_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("ADAPTER_AUTH_URL", "http://api.example/auth")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")
	t.Setenv("CLIENT_DSN", "client.db")
	t.Setenv("WORKERS_SESSION_CLEANUP_INTERVAL", "10m")
	t.Setenv("CONFIG", "/etc/dineo.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/dineo", cfg.Storage.DB.DSN)
	assert.Equal(t, "media", cfg.Storage.S3.Bucket)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "http://api.example/auth", cfg.Adapter.AuthURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Client.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SessionCleanupInterval)
	assert.Equal(t, "/etc/dineo.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidDuration verifies that conversion errors are wrapped.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "forever")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
