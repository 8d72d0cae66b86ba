// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/models"
)

type screen int

const (
	screenBrowse screen = iota
	screenDetail
	screenLogin
	screenRegister
	screenUpload
)

type appModel struct {
	ctx       context.Context
	sessions  service.SessionManager
	browser   service.ContentBrowser
	buildInfo models.AppBuildInfo

	screen      screen
	sectionIdx  int
	listFocused bool
	items       []models.ContentItem
	itemIdx     int
	loading     bool
	spinner     spinner.Model
	help        help.Model

	login    formModel
	register formModel
	upload   uploadFormModel
	detail   models.ContentItem

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, sessions service.SessionManager, browser service.ContentBrowser, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:       ctx,
		sessions:  sessions,
		browser:   browser,
		buildInfo: buildInfo,
		spinner:   s,
		help:      help.New(),
		login:     newLoginForm(),
		register:  newRegisterForm(),
	}
	m.upload = newUploadForm(m.section())
	m.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(m.section()))
}

func (m appModel) section() models.Section {
	return models.Sections[m.sectionIdx]
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		return m.handleLoaded(msg)
	case authDoneMsg:
		return m.handleAuthDone(msg)
	case uploadDoneMsg:
		return m.handleUploadDone(msg)
	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.refreshItems()
		return m.setStatus("Signed out")
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m.setStatus("Link copied to clipboard")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input internals.
	switch m.screen {
	case screenLogin:
		return m, m.login.updateInput(msg)
	case screenRegister:
		return m, m.register.updateInput(msg)
	case screenUpload:
		return m, m.upload.update(msg)
	}
	return m, nil
}

func (m appModel) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, service.ErrStaleResponse) || msg.section != m.section() {
		return m, nil
	}

	m.loading = false
	m.refreshItems()
	if msg.err != nil {
		m.showErrorf(humanizeError(msg.err))
	}
	return m, nil
}

// handleAuthDone reports the result on the form that sent the request. An
// error for a form the user has already left is shown as a notification.
func (m appModel) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	form := &m.login
	if msg.from == screenRegister {
		form = &m.register
	}
	form.submitting = false

	if msg.err != nil {
		if m.screen == msg.from {
			form.errMsg = humanizeError(msg.err)
		} else {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	}

	m.login.reset()
	m.register.reset()
	if m.screen == screenLogin || m.screen == screenRegister {
		m.screen = screenBrowse
	}
	m.refreshItems()

	name := ""
	if msg.session.User != nil {
		name = msg.session.User.Username
	}
	return m.setStatus("Signed in as " + name)
}

func (m appModel) handleUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	m.upload.form.submitting = false
	if msg.err != nil {
		m.upload.form.errMsg = humanizeError(msg.err)
		return m, nil
	}

	m.upload = newUploadForm(m.section())
	m.screen = screenBrowse
	m.refreshItems()

	if st := m.browser.State(); st.Status == service.LoadStatusError {
		m.showErrorf(humanizeError(st.Err))
	}
	return m.setStatus("Uploaded \"" + msg.item.Title + "\"")
}

// refreshItems copies the browser's list for the active section. The profile
// shows the signed-in user's uploads only.
func (m *appModel) refreshItems() {
	switch {
	case !listsContent(m.section()):
		m.items = nil
	case m.section() == models.SectionProfile:
		user := m.sessions.User()
		if user == nil {
			m.items = nil
			break
		}
		m.items = m.browser.MyItems(user.ID)
	default:
		m.items = m.browser.Items()
	}

	if m.itemIdx >= len(m.items) {
		m.itemIdx = len(m.items) - 1
	}
	if m.itemIdx < 0 {
		m.itemIdx = 0
	}
	if len(m.items) == 0 {
		m.listFocused = false
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenLogin, screenRegister:
		return m.updateAuthForm(msg)
	case screenUpload:
		return m.updateUploadForm(msg)
	case screenDetail:
		return m.updateDetail(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.focus):
		m.listFocused = !m.listFocused && len(m.items) > 0
		return m, nil
	case key.Matches(msg, keys.up):
		if m.listFocused {
			m.itemIdx = max(m.itemIdx-1, 0)
			return m, nil
		}
		m.sectionIdx = (m.sectionIdx - 1 + len(models.Sections)) % len(models.Sections)
		return m.selectSection()
	case key.Matches(msg, keys.down):
		if m.listFocused {
			m.itemIdx = min(m.itemIdx+1, len(m.items)-1)
			return m, nil
		}
		m.sectionIdx = (m.sectionIdx + 1) % len(models.Sections)
		return m.selectSection()
	case key.Matches(msg, keys.enter):
		if m.listFocused {
			m.detail = m.items[m.itemIdx]
			m.screen = screenDetail
			return m, nil
		}
		m.listFocused = len(m.items) > 0
		return m, nil
	case key.Matches(msg, keys.reload):
		return m.selectSection()
	case key.Matches(msg, keys.copy):
		if m.listFocused {
			return m, cmdCopyToClipboard(m.items[m.itemIdx].FileURL)
		}
	case key.Matches(msg, keys.upload):
		if !m.sessions.IsAuthenticated() {
			m.showErrorf(service.ErrNotAuthenticated.Error())
			return m, nil
		}
		m.upload = newUploadForm(m.section())
		m.screen = screenUpload
		return m, textinput.Blink
	case key.Matches(msg, keys.login):
		if !m.sessions.IsAuthenticated() {
			m.screen = screenLogin
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.register):
		if !m.sessions.IsAuthenticated() {
			m.screen = screenRegister
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.logout):
		if m.sessions.IsAuthenticated() {
			return m, m.cmdLogout()
		}
	}
	return m, nil
}

// selectSection shows the section at sectionIdx and loads its content.
// Sections without a content type still load: the browser then holds the
// unfiltered list.
func (m appModel) selectSection() (tea.Model, tea.Cmd) {
	section := m.section()
	m.itemIdx = 0
	m.listFocused = false

	var cmds []tea.Cmd
	if !m.loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	m.loading = true
	m.items = nil
	cmds = append(cmds, m.cmdLoad(section))
	return m, tea.Batch(cmds...)
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenBrowse
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.FileURL)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuthForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.login
	if m.screen == screenRegister {
		form = &m.register
	}

	switch msg.String() {
	case "esc":
		form.errMsg = ""
		m.screen = screenBrowse
		return m, nil
	case "tab":
		form.focusNext()
		return m, nil
	case "shift+tab":
		form.focusPrev()
		return m, nil
	case "enter":
		if form.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		if m.screen == screenRegister {
			in, err := form.registerInput()
			if err != nil {
				form.errMsg = err.Error()
				return m, nil
			}
			cmd = m.cmdRegister(in)
		} else {
			in, err := form.loginInput()
			if err != nil {
				form.errMsg = err.Error()
				return m, nil
			}
			cmd = m.cmdLogin(in)
		}
		form.errMsg = ""
		form.submitting = true
		return m, cmd
	}

	return m, form.updateInput(msg)
}

func (m appModel) updateUploadForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.upload.form.errMsg = ""
		m.screen = screenBrowse
		return m, nil
	case "tab":
		m.upload.focusNext()
		return m, nil
	case "shift+tab":
		m.upload.focusPrev()
		return m, nil
	case "enter":
		if m.upload.form.submitting {
			return m, nil
		}
		in, path, err := m.upload.input()
		if err != nil {
			m.upload.form.errMsg = err.Error()
			return m, nil
		}
		m.upload.form.errMsg = ""
		m.upload.form.submitting = true
		return m, m.cmdUpload(in, path)
	}

	return m, m.upload.update(msg)
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.screen {
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenUpload:
		body = m.upload.View()
	case screenDetail:
		body = renderDetail(m.detail, m.status)
	default:
		body = m.browseView()
	}

	if m.showError {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.errorOverlay.View())
	}
	return appStyle.Render(body)
}
