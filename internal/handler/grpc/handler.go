// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the Di-NEO server.
package grpc

import (
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service names reported by the health service besides the overall "" entry.
const (
	AuthServiceName    = "dineo.auth"
	ContentServiceName = "dineo.content"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose services all report SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}

	for _, name := range []string{"", AuthServiceName, ContentServiceName} {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown switches every service to NOT_SERVING so clients drain before the
// server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
