// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

const sidebarWidth = 14

var (
	neonCyan    = lipgloss.Color("#00F0FF")
	neonPink    = lipgloss.Color("#FF2E97")
	neonPurple  = lipgloss.Color("#B026FF")
	neonGreen   = lipgloss.Color("#7CFFB2")
	alertRed    = lipgloss.Color("#FF4D6D")
	dividerGray = lipgloss.Color("#3A3A4A")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(neonCyan)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(alertRed)
	statusStyle     = lipgloss.NewStyle().Foreground(neonGreen)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(neonPurple).Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			MarginRight(2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(dividerGray)
	activeSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(neonCyan)
	focusedStyle       = lipgloss.NewStyle().Bold(true).Foreground(neonPink)

	oldPriceStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	discountStyle = lipgloss.NewStyle().Bold(true).Foreground(neonPink)
	freeStyle     = lipgloss.NewStyle().Bold(true).Foreground(neonGreen)
)
