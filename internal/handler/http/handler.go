// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/metrics"
	"github.com/digiplay/dineo/internal/service"
)

// Config holds the transport options of [Handler].
type Config struct {
	// CORSOrigins lists allowed origins. Empty or "*" allows any origin.
	CORSOrigins []string

	// RequestTimeout bounds a single request. Zero disables the limit.
	RequestTimeout time.Duration

	// FilesDir is served under /files/ when set.
	FilesDir string
}

// ConfigFrom extracts the handler options from the server configuration.
// Local files are only served when uploads are not stored in S3.
func ConfigFrom(cfg config.StructuredConfig) Config {
	c := Config{
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if !cfg.Storage.S3.Enabled() {
		c.FilesDir = cfg.Storage.Files.Dir
	}
	return c
}

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      Config

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg Config, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		cfg:      cfg,
		logger:   logger,
	}
}
