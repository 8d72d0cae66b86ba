// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/store"
)

// Services groups the server-side services used by the handlers.
type Services struct {
	AuthService    AuthService
	ContentService ContentService
	AppInfoService AppInfoService
}

// NewServices wires every service with input validation in front of it.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages, cfg.App, logger)),
		ContentService: NewContentValidationService().Wrap(NewContentService(storages, logger)),
		AppInfoService: appInfo,
	}, nil
}
