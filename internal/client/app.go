// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
)

var ErrNilDependency = errors.New("client dependency is nil")

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionManager == nil || services.ContentBrowser == nil || ui == nil {
		return nil, ErrNilDependency
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run restores the session of a previous launch, if any, and blocks in the
// UI. A rejected token only leaves the user signed out.
func (a *App) Run(ctx context.Context) error {
	session := a.services.SessionManager.Restore(ctx)
	if session.IsEmpty() {
		a.logger.Info().Str("func", "*App.Run").Msg("starting without a session")
	} else {
		a.logger.Info().Str("func", "*App.Run").Int64("user_id", session.User.ID).Msg("starting with a restored session")
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
