// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the server.
package handler

import (
	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/handler/grpc"
	"github.com/digiplay/dineo/internal/handler/http"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/metrics"
	"github.com/digiplay/dineo/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, http.ConfigFrom(cfg), m, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
