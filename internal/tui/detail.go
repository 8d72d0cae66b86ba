// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/digiplay/dineo/models"
)

func renderDetail(item models.ContentItem, status string) string {
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%-12s │ %s\n", label, value)
	}

	row("Type", string(item.Type))
	row("Author", valueOrDash(item.Author))
	row("Category", valueOrDash(item.Category))
	row("Price", renderPrice(item))
	row("Downloads", fmt.Sprintf("%d", item.Downloads))
	row("Views", fmt.Sprintf("%d", item.Views))
	row("File", item.FileURL)
	row("Thumbnail", valueOrDash(item.ThumbnailURL))
	if !item.CreatedAt.IsZero() {
		row("Published", item.CreatedAt.Local().Format(time.DateTime))
	}
	if item.Description != "" {
		b.WriteString("\n")
		b.WriteString(item.Description)
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}

	return renderPage(
		fmt.Sprintf("%s %s", typeIcon(item.Type), item.Title),
		strings.TrimRight(b.String(), "\n"),
		"c: copy link │ esc: back",
	)
}
