// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/digiplay/dineo/models"
)

// Sections without content show a fixed text instead of a list.
var staticSections = map[models.Section]string{
	models.SectionChats:    "No conversations yet.",
	models.SectionGroups:   "You have not joined any groups.",
	models.SectionChannels: "No channel subscriptions.",
	models.SectionCalls:    "No recent calls.",
	models.SectionAdmin:    "Administration is only available in the web app.",
}

func listsContent(s models.Section) bool {
	_, static := staticSections[s]
	return !static
}

const (
	profileSignedOut = "Sign in to see your uploads. i: sign in │ g: sign up"
	profileNoUploads = "You have not uploaded anything yet. Press u to upload."
)

func (m appModel) browseView() string {
	header := titleStyle.Render("Di-NEO")
	if user := m.sessions.User(); user != nil {
		header += helpStyle.Render("  signed in as " + user.Username)
	} else {
		header += helpStyle.Render("  guest")
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.sectionView())

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(browseHelp{authenticated: m.sessions.IsAuthenticated()}))

	return b.String()
}

func (m appModel) sidebarView() string {
	var b strings.Builder
	for i, s := range models.Sections {
		if i == m.sectionIdx {
			style := activeSectionStyle
			if !m.listFocused {
				style = focusedStyle
			}
			b.WriteString(style.Render("▸ " + s.Title()))
		} else {
			b.WriteString("  " + s.Title())
		}
		b.WriteString("\n")
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m appModel) sectionView() string {
	section := m.section()

	var b strings.Builder
	b.WriteString(titleStyle.Render(section.Title()))
	b.WriteString("\n\n")

	if text, static := staticSections[section]; static {
		b.WriteString(helpStyle.Render(text))
		return b.String()
	}

	empty := m.browser.EmptyMessage()
	if section == models.SectionProfile {
		user := m.sessions.User()
		if user == nil {
			b.WriteString(helpStyle.Render(profileSignedOut))
			return b.String()
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", user.Username, helpStyle.Render(user.Email))
		fmt.Fprintf(&b, "My uploads (%d)\n\n", len(m.items))
		empty = profileNoUploads
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString(helpStyle.Render(empty))
	default:
		b.WriteString(m.itemsView())
	}

	return b.String()
}

func (m appModel) itemsView() string {
	var b strings.Builder
	for i, item := range m.items {
		cursor := "  "
		if m.listFocused && i == m.itemIdx {
			cursor = focusedStyle.Render("> ")
		}

		meta := valueOrDash(item.Author)
		if item.Category != nil && *item.Category != "" {
			meta += " · " + *item.Category
		}

		fmt.Fprintf(&b, "%s%s %-32s %s  %s\n",
			cursor,
			typeIcon(item.Type),
			fitText(item.Title, 32),
			helpStyle.Render(fitText(meta, 24)),
			renderPrice(item),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
