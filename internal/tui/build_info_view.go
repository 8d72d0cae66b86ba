// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/digiplay/dineo/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: Di-NEO\n")
	b.WriteString("Version:     ")
	b.WriteString(info.Version())
	b.WriteString("\n")
	b.WriteString("Built:       ")
	b.WriteString(info.Date())
	b.WriteString("\n")
	b.WriteString("Commit:      ")
	b.WriteString(info.Commit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
