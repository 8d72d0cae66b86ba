// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/digiplay/dineo/models"
)

const uiDivider = "────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

// renderPrice shows the original price struck through next to the effective
// one when a discount applies.
func renderPrice(item models.ContentItem) string {
	if item.IsFree() {
		return freeStyle.Render("Free")
	}

	effective := fmt.Sprintf("%d ₽", item.EffectivePrice())
	if item.Discount == 0 {
		return effective
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		oldPriceStyle.Render(fmt.Sprintf("%d ₽", item.Price)), " ",
		effective, " ",
		discountStyle.Render(fmt.Sprintf("-%d%%", item.Discount)),
	)
}

func typeIcon(t models.ContentType) string {
	switch t {
	case models.ContentTypeGame:
		return "[G]"
	case models.ContentTypeMusic:
		return "[M]"
	case models.ContentTypeVideo:
		return "[V]"
	case models.ContentTypeShortVideo:
		return "[S]"
	case models.ContentTypeImage:
		return "[I]"
	default:
		return "[?]"
	}
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
