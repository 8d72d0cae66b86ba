// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the Di-NEO client: a
// sidebar of sections, the content list of the active section, sign-in and
// upload forms.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services.SessionManager, t.services.ContentBrowser, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped")
		return err
	}

	return nil
}
