// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/models"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdLoad(section models.Section) tea.Cmd {
	ctx := m.ctx
	browser := m.browser
	return func() tea.Msg {
		_, err := browser.Load(ctx, section)
		return loadedMsg{section: section, err: err}
	}
}

func (m appModel) cmdLogin(in loginInput) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Login(ctx, in.email, in.password)
		return authDoneMsg{from: screenLogin, session: session, err: err}
	}
}

func (m appModel) cmdRegister(in registerInput) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Register(ctx, in.email, in.username, in.password)
		return authDoneMsg{from: screenRegister, session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		return logoutDoneMsg{err: sessions.Logout(ctx)}
	}
}

// cmdUpload reads the file at path and publishes it together with in.
func (m appModel) cmdUpload(in models.UploadInput, path string) tea.Cmd {
	ctx := m.ctx
	browser := m.browser
	return func() tea.Msg {
		name, data, err := service.ReadUploadFile(path)
		if err != nil {
			return uploadDoneMsg{err: err}
		}
		in.FileName = name
		in.FileData = data

		item, err := browser.Upload(ctx, in)
		return uploadDoneMsg{item: item, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
